package ui

import "fmt"

// Size represents 2D dimensions.
// The zero value is an empty (and valid) size.
//
// Size does not enforce non-negative dimensions at construction:
// negative or NaN dimensions can arise transiently during layout
// computation and are reported by [Size.IsValid] on demand.
type Size struct {
	Width, Height float32
}

// Sz is a convenience function to create a Size.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// IsValid reports whether both dimensions are non-negative.
// NaN dimensions are invalid.
func (s Size) IsValid() bool {
	return s.Width >= 0 && s.Height >= 0
}

// IsPositive reports whether both dimensions are strictly positive.
func (s Size) IsPositive() bool {
	return s.Width > 0 && s.Height > 0
}

// Area returns Width * Height.
//
// Area panics if the size is invalid. This is the one place where an
// invalid size becomes a hard fault rather than a silently clamped
// value; callers that may hold transient negatives during layout must
// check [Size.IsValid] first.
func (s Size) Area() float32 {
	if !s.IsValid() {
		panic(fmt.Sprintf("ui: area of invalid size %v", s))
	}
	return s.Width * s.Height
}

// String returns the size in "WxH" form.
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
