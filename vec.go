package ui

// Vec2 is a Point used semantically as a displacement: a direction and
// magnitude rather than a position. The representation is identical, so
// points and vectors mix freely in arithmetic; the alias exists to make
// call sites self-describing.
type Vec2 = Point

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}
