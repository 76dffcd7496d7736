package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Padding represents per-edge insets.
//
// Each edge is non-negative or +Inf: constructors map NaN and negative
// values to 0 and preserve +Inf, which layout treats as "fill the
// available space". The zero value is zero padding on every edge.
type Padding struct {
	Left, Right, Top, Bottom float32
}

// Pad creates a Padding with the given per-edge insets, each clamped
// (NaN and negatives to 0, +Inf preserved).
func Pad(left, right, top, bottom float32) Padding {
	return Padding{
		Left:   clampEdge(left),
		Right:  clampEdge(right),
		Top:    clampEdge(top),
		Bottom: clampEdge(bottom),
	}
}

// PadAll creates a Padding with the same inset on every edge.
func PadAll(v float32) Padding {
	return Pad(v, v, v, v)
}

// PadHorizontal creates a Padding with left and right insets and zero
// vertical insets.
func PadHorizontal(v float32) Padding {
	return Pad(v, v, 0, 0)
}

// PadVertical creates a Padding with top and bottom insets and zero
// horizontal insets.
func PadVertical(v float32) Padding {
	return Pad(0, 0, v, v)
}

// PadSymmetric creates a Padding with one horizontal inset (left and
// right) and one vertical inset (top and bottom).
func PadSymmetric(horizontal, vertical float32) Padding {
	return Pad(horizontal, horizontal, vertical, vertical)
}

// Horizontal returns the combined left and right insets.
func (p Padding) Horizontal() float32 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom insets.
func (p Padding) Vertical() float32 {
	return p.Top + p.Bottom
}

// String returns the padding in CSS order "l r t b".
func (p Padding) String() string {
	return fmt.Sprintf("pad(%g %g %g %g)", p.Left, p.Right, p.Top, p.Bottom)
}

// clampEdge maps NaN and negative values to 0. +Inf passes through.
func clampEdge(x float32) float32 {
	if math32.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}
