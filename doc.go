// Package ui provides the primitive value types for an immediate-mode
// GUI renderer in the GoGPU ecosystem.
//
// # Overview
//
// ui is the foundation layer shared by layout, widget, and rendering
// code: geometric types (Point, Vec2, Size, Rect) and visual-attribute
// types (Color, Padding, Border). Every type is a small, copyable value
// with no heap resources and no shared mutable state, so instances can
// be passed around and stored freely by higher layers.
//
// # Quick Start
//
//	import "github.com/gogpu/ui"
//
//	frame := ui.RectXYWH(0, 0, 800, 600)
//	inner := frame.Inset(ui.PadAll(16))
//
//	accent, err := ui.ParseHex("#3f00ff")
//	if err != nil {
//	    // malformed user/config input
//	}
//	border := ui.BorderSolid(2, accent)
//	_ = border
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All scalars are float32, matching GPU vertex and uniform formats.
//
// # Validation Policy
//
// Numeric constructors never fail: out-of-range input is clamped to
// the nearest legal value (see Color, Padding, Border). The two
// exceptions are documented programmer errors that panic: dividing a
// Point by a divisor with a zero component, and taking the Area of an
// invalid Size. ParseHex is the only operation that returns an error,
// because malformed text is expected input.
//
// # GPU Interop
//
// Color preserves the field order and tight 4xfloat32 packing expected
// by shader-side vec4 color uniforms; see Color and Color.Vec4 for the
// alignment contract.
package ui
