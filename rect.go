package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rect represents an axis-aligned rectangle as a position and a size.
// Pos is the top-left corner. The zero value is an empty rectangle at
// the origin.
type Rect struct {
	Pos  Point
	Size Size
}

// RectXYWH is a convenience function to create a Rect from the
// top-left corner and dimensions.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Pos: Pt(x, y), Size: Sz(w, h)}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float32 { return r.Pos.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.Pos.X + r.Size.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 { return r.Pos.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Pos.Y + r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.Pos.X+r.Size.Width/2, r.Pos.Y+r.Size.Height/2)
}

// Contains reports whether p lies inside the rectangle.
// All four edges are inclusive: a point exactly on an edge is
// contained. Hit testing relies on this so adjacent widgets sharing an
// edge both report hits on the shared boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
// The comparison is edge-inclusive: rectangles that merely touch along
// an edge intersect, and full containment in either direction counts.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}

// Area returns the area of the rectangle.
// Like [Size.Area], it panics if the size is invalid.
func (r Rect) Area() float32 {
	return r.Size.Area()
}

// Inset returns the rectangle shrunk by the given padding: the origin
// moves right/down by the left/top insets and the size loses the
// horizontal/vertical sums. Dimensions never go below zero, so
// oversized padding yields an empty rectangle rather than an invalid
// one.
func (r Rect) Inset(p Padding) Rect {
	// NaN can arise from Inf-Inf when a fill padding meets an
	// infinite size; treat it as fully consumed.
	w := r.Size.Width - p.Horizontal()
	h := r.Size.Height - p.Vertical()
	if w < 0 || math32.IsNaN(w) {
		w = 0
	}
	if h < 0 || math32.IsNaN(h) {
		h = 0
	}
	return Rect{
		Pos:  Pt(r.Pos.X+p.Left, r.Pos.Y+p.Top),
		Size: Sz(w, h),
	}
}

// String returns the rectangle in "(x, y) WxH" form.
func (r Rect) String() string {
	return fmt.Sprintf("%v %v", r.Pos, r.Size)
}
