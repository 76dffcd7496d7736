package ui

// Border represents a border stroke: a width in pixels and a color.
// The zero value is no border (zero width, transparent).
type Border struct {
	Width float32
	Color Color
}

// NewBorder creates a Border with the given width and color. NaN and
// negative widths clamp to 0; the color is stored as-is since Color
// constructors already normalize it.
func NewBorder(width float32, color Color) Border {
	return Border{Width: clampEdge(width), Color: color}
}

// BorderNone returns a border that draws nothing.
func BorderNone() Border {
	return Border{Width: 0, Color: Transparent}
}

// BorderSolid creates a solid border. It is identical to [NewBorder];
// the name reads better where style code lists stroke kinds.
func BorderSolid(width float32, color Color) Border {
	return NewBorder(width, color)
}
