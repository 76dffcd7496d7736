package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Color represents an RGBA color with float32 channels in [0, 1].
//
// Every public constructor clamps its input (NaN and negatives to 0,
// values above 1 to 1), so a Color obtained through the API always
// holds normalized channels; IsValid only matters after direct field
// manipulation.
//
// The field order and tight 4xfloat32 packing are fixed: a Color is
// bit-compatible with a shader-side vec4 in R, G, B, A order. GPU
// uniform and storage layouts (std140/std430) require vec4 data at
// 16-byte alignment; use [Color.Vec4] when staging colors into a
// buffer and align the destination offset to 16 bytes.
type Color struct {
	R, G, B, A float32
}

// Named color constants with canonical channel values.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// Parse errors returned by ParseHex. The checks run in this order:
// format, then characters, then length, so a string that is wrong in
// several ways reports the first failure.
var (
	// ErrInvalidFormat is returned when the string does not start with '#'.
	ErrInvalidFormat = errors.New("ui: hex color must start with '#'")

	// ErrInvalidCharacter is returned when a character after '#' is not
	// an ASCII hex digit.
	ErrInvalidCharacter = errors.New("ui: hex color contains a non-hex character")

	// ErrInvalidLength is returned when the digit count after '#' is
	// neither 6 nor 8.
	ErrInvalidLength = errors.New("ui: hex color must have 6 or 8 digits")
)

// NewColor creates a Color from float channels.
// Each channel is clamped independently: NaN and negative values
// become 0, values above 1 become 1.
func NewColor(r, g, b, a float32) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// RGB creates an opaque color from float channels, clamped like
// [NewColor].
func RGB(r, g, b float32) Color {
	return NewColor(r, g, b, 1)
}

// RGBA8 creates a color from byte channels, scaling each by 1/255.
func RGBA8(r, g, b, a uint8) Color {
	const s = 1.0 / 255.0
	return Color{
		R: float32(r) * s,
		G: float32(g) * s,
		B: float32(b) * s,
		A: float32(a) * s,
	}
}

// FromHex creates an opaque color from a 0xRRGGBB integer.
// Values above 0xFFFFFF saturate to 0xFFFFFF (white) rather than
// wrapping, so an accidentally-32-bit literal degrades predictably.
func FromHex(hex uint32) Color {
	if hex > 0xFFFFFF {
		hex = 0xFFFFFF
	}
	return RGBA8(uint8(hex>>16), uint8(hex>>8), uint8(hex), 0xFF)
}

// FromHexAlpha creates a color from a 0xRRGGBBAA integer.
// All 32 bits are significant, so every input is legal.
func FromHexAlpha(hex uint32) Color {
	return RGBA8(uint8(hex>>24), uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// ParseHex parses a textual hex color of the form "#RRGGBB" or
// "#RRGGBBAA", case-insensitive. When the alpha digits are absent,
// alpha defaults to 0xFF.
//
// Malformed input returns one of [ErrInvalidFormat],
// [ErrInvalidCharacter], or [ErrInvalidLength], wrapped with the
// offending string.
func ParseHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, parseErr(s, ErrInvalidFormat)
	}
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, parseErr(s, ErrInvalidCharacter)
		}
	}
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, parseErr(s, ErrInvalidLength)
	}

	r := hexByte(digits[0], digits[1])
	g := hexByte(digits[2], digits[3])
	b := hexByte(digits[4], digits[5])
	a := uint8(0xFF)
	if len(digits) == 8 {
		a = hexByte(digits[6], digits[7])
	}
	return RGBA8(r, g, b, a), nil
}

func parseErr(s string, sentinel error) error {
	Logger().Debug("hex color parse failed", "input", s, "err", sentinel)
	return fmt.Errorf("%w: %q", sentinel, s)
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// hexByte decodes two hex digits already validated by isHexDigit.
func hexByte(hi, lo byte) uint8 {
	return hexDigit(hi)<<4 | hexDigit(lo)
}

func hexDigit(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// ToRGBA8 returns the byte form of each channel: round(channel * 255)
// with half rounding up, clamped to [0, 255].
func (c Color) ToRGBA8() (r, g, b, a uint8) {
	return roundByte(c.R * 255), roundByte(c.G * 255), roundByte(c.B * 255), roundByte(c.A * 255)
}

// roundByte rounds by adding 0.5 and truncating. The clamp guards
// edge values like exactly 255.0 and NaN from direct field writes.
func roundByte(x float32) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}

// WithAlpha returns a color with the same RGB and the given alpha,
// clamped like [NewColor].
func (c Color) WithAlpha(a float32) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// IsValid reports whether all four channels are non-NaN and within
// [0, 1]. Constructors clamp, so this is a diagnostic for colors whose
// fields were written directly or received from an external source.
func (c Color) IsValid() bool {
	return validChannel(c.R) && validChannel(c.G) && validChannel(c.B) && validChannel(c.A)
}

func validChannel(x float32) bool {
	return !math32.IsNaN(x) && x >= 0 && x <= 1
}

// Vec4 returns the color as a 4xfloat32 array in R, G, B, A order,
// the layout a vec4 color uniform expects. Destination buffer offsets
// must be 16-byte aligned per std140/std430.
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Std converts the color to the standard library color.Color.
func (c Color) Std() color.Color {
	r, g, b, a := c.ToRGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard library color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// RGBA() returns alpha-premultiplied 16-bit channels.
	return Color{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

// String returns the color as "#RRGGBBAA".
func (c Color) String() string {
	r, g, b, a := c.ToRGBA8()
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

func clamp01(x float32) float32 {
	if math32.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
