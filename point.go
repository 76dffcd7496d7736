package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point represents a 2D position.
// The zero value is the origin.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of two points.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the component-wise quotient of two points.
//
// Div panics if either component of q is exactly zero. Dividing by a
// zero component is a programmer error, not expected control flow.
func (p Point) Div(q Point) Point {
	if q.X == 0 || q.Y == 0 {
		panic(fmt.Sprintf("ui: division by zero component: %v / %v", p, q))
	}
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// SetAdd adds q to p, component-wise.
func (p *Point) SetAdd(q Point) {
	p.X += q.X
	p.Y += q.Y
}

// SetSub subtracts q from p, component-wise.
func (p *Point) SetSub(q Point) {
	p.X -= q.X
	p.Y -= q.Y
}

// SetMul multiplies p by q, component-wise.
func (p *Point) SetMul(q Point) {
	p.X *= q.X
	p.Y *= q.Y
}

// SetDiv divides p by q, component-wise.
// Like [Point.Div], it panics if either component of q is exactly zero.
func (p *Point) SetDiv(q Point) {
	*p = p.Div(q)
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the Euclidean distance between two points.
// Distance is symmetric and zero for equal points.
func (p Point) Distance(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// String returns the point in "(x, y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
