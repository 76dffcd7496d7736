package ui

import colorful "github.com/lucasb-eyer/go-colorful"

// Blend interpolates between c and o in RGB space. t=0 returns c,
// t=1 returns o. Alpha is interpolated linearly alongside; t is
// clamped to [0, 1] so blends never extrapolate outside the gamut.
func (c Color) Blend(o Color, t float32) Color {
	t = clamp01(t)
	m := c.Colorful().BlendRgb(o.Colorful(), float64(t))
	blended := FromColorful(m)
	blended.A = c.A + (o.A-c.A)*t
	return blended
}

// Colorful converts the RGB channels to a go-colorful color for
// color-space work (HSL, Lab, distance metrics). Alpha is dropped;
// carry it separately.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// FromColorful converts a go-colorful color to an opaque Color,
// clamping channels like [NewColor].
func FromColorful(c colorful.Color) Color {
	return NewColor(float32(c.R), float32(c.G), float32(c.B), 1)
}
