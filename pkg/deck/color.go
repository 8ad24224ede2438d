package deck

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ParseColor parses "389CF7", "#389CF7" or the short "#fff" form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustColor is like ParseColor but panics on malformed input.
// It is meant for package-level palette literals.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as six uppercase hex digits without a leading '#'.
func (c Color) Hex() string { return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B) }

// ARGB returns the color as eight hex digits with a fully opaque alpha.
func (c Color) ARGB() string { return "FF" + c.Hex() }

// String implements fmt.Stringer.
func (c Color) String() string { return "#" + c.Hex() }

// StdRGBA converts c to the standard library color type.
func (c Color) StdRGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

// Blend mixes c toward other in Lab space; t = 0 keeps c, t = 1 yields other.
func (c Color) Blend(other Color, t float64) Color {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return Color{R: r, G: g, B: bl}
}

// MarshalText encodes c as "#RRGGBB".
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes any form accepted by ParseColor.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
