package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	slide int
	dpi   float64
}

// WithPNGSlide selects the zero-based slide to render (default 0).
func WithPNGSlide(i int) PNGOption { return func(r *pngRenderer) { r.slide = i } }

// MaxDPI bounds the PNG resolution; a widescreen slide at MaxDPI is
// 8000 by 4500 pixels.
const MaxDPI = 600

// WithDPI sets the output resolution (default 96).
func WithDPI(dpi float64) PNGOption { return func(r *pngRenderer) { r.dpi = dpi } }

// RenderPNG rasterizes one slide with the bundled fonts.
func RenderPNG(d *deck.Deck, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: 96}
	for _, opt := range opts {
		opt(&r)
	}
	if err := ValidateDPI(r.dpi); err != nil {
		return nil, err
	}
	s, err := slideAt(d, r.slide)
	if err != nil {
		return nil, err
	}

	scale := r.dpi / 72
	w := int(math.Ceil(d.Page.Width.Pixels(r.dpi)))
	h := int(math.Ceil(d.Page.Height.Pixels(r.dpi)))
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if bg, ok := s.Background(); ok {
		dc.SetColor(bg.StdRGBA())
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	}
	for _, e := range s.Elements() {
		switch v := e.(type) {
		case *deck.Shape:
			drawPNGShape(dc, v, scale)
		case *deck.TextBox:
			if err := drawPNGText(dc, v, scale); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	return buf.Bytes(), nil
}

// ValidateDPI accepts finite resolutions in (0, MaxDPI].
func ValidateDPI(dpi float64) error {
	if math.IsNaN(dpi) || math.IsInf(dpi, 0) || dpi <= 0 || dpi > MaxDPI {
		return errors.New(errors.ErrCodeInvalidInput, "dpi must be in (0, %d], got %g", MaxDPI, dpi)
	}
	return nil
}

func drawPNGShape(dc *gg.Context, s *deck.Shape, scale float64) {
	x, y := s.Rect.Left.Points()*scale, s.Rect.Top.Points()*scale
	w, h := s.Rect.Width.Points()*scale, s.Rect.Height.Points()*scale
	path := func() {
		switch s.Kind {
		case deck.KindOval:
			dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
		case deck.KindRoundRect:
			dc.DrawRoundedRectangle(x, y, w, h, cornerRadius(s.Rect)*scale)
		default:
			dc.DrawRectangle(x, y, w, h)
		}
	}

	path()
	dc.SetColor(s.Fill.StdRGBA())
	dc.Fill()
	if s.Border != nil {
		path()
		dc.SetColor(s.Border.Color.StdRGBA())
		dc.SetLineWidth(s.Border.Width.Points() * scale)
		dc.Stroke()
	}
}

func drawPNGText(dc *gg.Context, t *deck.TextBox, scale float64) error {
	top := t.Rect.Top.Points()
	for _, p := range layoutText(t, measurer(t.Font)) {
		face, err := pointFace(t.Font, p.Size*scale, p.Bold)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "load font")
		}
		measureMu.Lock()
		dc.SetFontFace(face)
		dc.SetColor(p.Color.StdRGBA())
		for i, line := range p.Lines {
			lw, _ := dc.MeasureString(line)
			x := alignX(t.Rect, p.Align, lw/scale) * scale
			y := (top + p.Top + float64(i)*p.lineStep() + p.Size) * scale
			dc.DrawString(line, x, y)
		}
		measureMu.Unlock()
	}
	return nil
}
