// Package fonts provides the embedded typefaces used by the raster and
// vector renderers.
//
// Presentation files name their fonts (Calibri, Consolas) and leave the
// lookup to the viewer. The PNG, PDF and SVG renderers need actual glyph
// outlines, so they fall back to the Go font family, which ships with the
// binary via golang.org/x/image/font/gofont.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Variant selects one of the embedded faces.
type Variant int

const (
	Regular Variant = iota
	Bold
	Mono
)

var ttf = map[Variant][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Mono:    gomono.TTF,
}

// TTF returns the raw font data for v.
func TTF(v Variant) []byte { return ttf[v] }

var (
	parsed     map[Variant]*truetype.Font
	parseErr   error
	parsedOnce sync.Once
)

func load() (map[Variant]*truetype.Font, error) {
	parsedOnce.Do(func() {
		parsed = make(map[Variant]*truetype.Font, len(ttf))
		for v, data := range ttf {
			f, err := truetype.Parse(data)
			if err != nil {
				parseErr = err
				return
			}
			parsed[v] = f
		}
	})
	return parsed, parseErr
}

// Face returns a new face for v at size points and the given resolution.
// Faces cache glyphs and must not be shared between goroutines.
func Face(v Variant, size, dpi float64) (font.Face, error) {
	fs, err := load()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(fs[v], &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	}), nil
}

// For picks the variant for a run: Mono when the requested typeface is a
// monospace family, otherwise Bold or Regular.
func For(family string, bold bool) Variant {
	switch family {
	case "Consolas", "Courier New", "Menlo", "monospace":
		return Mono
	}
	if bold {
		return Bold
	}
	return Regular
}

// Cache for base64-encoded fonts (computed once on first access).
var (
	b64     map[Variant]string
	b64Once sync.Once
)

// Base64 returns the TTF data for v as a base64 string, suitable for an
// SVG @font-face data URL.
func Base64(v Variant) string {
	b64Once.Do(func() {
		b64 = make(map[Variant]string, len(ttf))
		for k, data := range ttf {
			b64[k] = base64.StdEncoding.EncodeToString(data)
		}
	})
	return b64[v]
}

// FontFamily is the CSS font-family name the SVG renderer registers for the
// embedded faces.
const FontFamily = "Stackdeck Go"

// FallbackFontFamily lists the families tried after the deck's own font.
const FallbackFontFamily = `'Stackdeck Go', 'Go', 'Helvetica Neue', Arial, sans-serif`
