package sink

import (
	"sync"

	"golang.org/x/image/font"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/fonts"
)

type faceKey struct {
	variant fonts.Variant
	size    float64
}

// faceCache holds 72 DPI faces so one face unit equals one point. Faces are
// not safe for concurrent use; measureMu serializes access to them.
var (
	faceCache sync.Map
	measureMu sync.Mutex
)

func pointFace(family string, size float64, bold bool) (font.Face, error) {
	key := faceKey{variant: fonts.For(family, bold), size: size}
	if f, ok := faceCache.Load(key); ok {
		return f.(font.Face), nil
	}
	f, err := fonts.Face(key.variant, size, 72)
	if err != nil {
		return nil, err
	}
	actual, _ := faceCache.LoadOrStore(key, f)
	return actual.(font.Face), nil
}

// measurer returns a measureFunc backed by the bundled fonts for family.
func measurer(family string) measureFunc {
	return func(s string, size float64, bold bool) float64 {
		f, err := pointFace(family, size, bold)
		if err != nil {
			// Fall back to an average glyph width.
			return float64(len([]rune(s))) * size * 0.5
		}
		measureMu.Lock()
		defer measureMu.Unlock()
		return float64(font.MeasureString(f, s)) / 64
	}
}

func errSlideRange(i, n int) error {
	return errors.New(errors.ErrCodeNotFound, "slide %d out of range (deck has %d)", i+1, n)
}
