package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// FormatError reports a string that is not a 6-digit hex color.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("palette: invalid hex color %q: %s", e.Input, e.Reason)
}

// ParseHex decodes "RRGGBB" or "#RRGGBB". Digits are case-insensitive.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, &FormatError{s, fmt.Sprintf("want 6 hex digits, got %d characters", len(h))}
	}

	v, e := strconv.ParseUint(h, 16, 32)
	if e != nil {
		return RGB{}, &FormatError{s, "non-hex digit"}
	}

	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) RGB {
	c, e := ParseHex(s)
	if e != nil {
		panic(e)
	}
	return c
}

// Hex returns c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalized returns the channels scaled to [0, 1].
func (c RGB) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Alpha returns the opaque color that looks like hex drawn with the given
// opacity over a white background.
func Alpha(hex string, alpha float64) (string, error) {
	c, e := ParseHex(hex)
	if e != nil {
		return "", e
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return "", fmt.Errorf("palette: alpha %v outside [0, 1]", alpha)
	}

	blend := func(v uint8) uint8 {
		k := alpha*float64(v)/255 + (0.999 - alpha)
		return uint8(math.Max(0, math.Min(255, math.Trunc(255*k))))
	}

	return RGB{blend(c.R), blend(c.G), blend(c.B)}.Hex(), nil
}

// AlphaSuffix appends alpha as a two-digit hex byte, giving "#RRGGBBAA".
// Bytes below 0x10 are zero padded, so 0.02 gives "05".
func AlphaSuffix(hex string, alpha float64) (string, error) {
	if _, e := ParseHex(hex); e != nil {
		return "", e
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return "", fmt.Errorf("palette: alpha %v outside [0, 1]", alpha)
	}

	return fmt.Sprintf("%s%02x", hex, int(alpha*255)), nil
}
