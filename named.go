package ui

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Named looks up a color by its SVG 1.1 name ("dodgerblue",
// "PapayaWhip", ...). Lookup is case-insensitive. The second return
// value reports whether the name is known.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}
