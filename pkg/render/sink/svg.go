package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/fonts"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	slide      int
	embedFonts bool
}

// WithSVGSlide selects the zero-based slide to render (default 0).
func WithSVGSlide(i int) SVGOption { return func(r *svgRenderer) { r.slide = i } }

// WithEmbeddedFonts inlines the bundled fonts so the file renders the same
// everywhere.
func WithEmbeddedFonts() SVGOption { return func(r *svgRenderer) { r.embedFonts = true } }

// RenderSVG renders one slide as an SVG document sized in points.
func RenderSVG(d *deck.Deck, opts ...SVGOption) ([]byte, error) {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	s, err := slideAt(d, r.slide)
	if err != nil {
		return nil, err
	}

	w, h := d.Page.Width.Points(), d.Page.Height.Points()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	if r.embedFonts {
		renderFontDefs(&buf)
	}
	if bg, ok := s.Background(); ok {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n", w, h, bg)
	}
	for _, e := range s.Elements() {
		switch v := e.(type) {
		case *deck.Shape:
			renderSVGShape(&buf, v)
		case *deck.TextBox:
			renderSVGText(&buf, v)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderFontDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs><style>\n")
	for _, f := range []struct {
		variant fonts.Variant
		family  string
		weight  string
	}{
		{fonts.Regular, fonts.FontFamily, "normal"},
		{fonts.Bold, fonts.FontFamily, "bold"},
		{fonts.Mono, fonts.FontFamily + " Mono", "normal"},
	} {
		fmt.Fprintf(buf, "    @font-face { font-family: '%s'; font-weight: %s; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			f.family, f.weight, fonts.Base64(f.variant))
	}
	buf.WriteString("  </style></defs>\n")
}

func renderSVGShape(buf *bytes.Buffer, s *deck.Shape) {
	stroke := `stroke="none"`
	if s.Border != nil {
		stroke = fmt.Sprintf(`stroke="%s" stroke-width="%.2f"`, s.Border.Color, s.Border.Width.Points())
	}
	x, y := s.Rect.Left.Points(), s.Rect.Top.Points()
	w, h := s.Rect.Width.Points(), s.Rect.Height.Points()
	switch s.Kind {
	case deck.KindOval:
		fmt.Fprintf(buf, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s" %s/>`+"\n",
			x+w/2, y+h/2, w/2, h/2, s.Fill, stroke)
	case deck.KindRoundRect:
		rad := cornerRadius(s.Rect)
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s" %s/>`+"\n",
			x, y, w, h, rad, rad, s.Fill, stroke)
	default:
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" %s/>`+"\n",
			x, y, w, h, s.Fill, stroke)
	}
}

func renderSVGText(buf *bytes.Buffer, t *deck.TextBox) {
	measure := measurer(t.Font)
	family := fontFamilyCSS(t.Font)
	top := t.Rect.Top.Points()
	for _, p := range layoutText(t, measure) {
		weight := "normal"
		if p.Bold {
			weight = "bold"
		}
		for i, line := range p.Lines {
			lw := measure(line, p.Size, p.Bold)
			x := alignX(t.Rect, p.Align, lw)
			// Baseline sits one font size below the line top.
			y := top + p.Top + float64(i)*p.lineStep() + p.Size
			fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" font-weight="%s" fill="%s" xml:space="preserve">%s</text>`+"\n",
				x, y, family, p.Size, weight, p.Color, html.EscapeString(line))
		}
	}
}

func fontFamilyCSS(family string) string {
	if fonts.For(family, false) == fonts.Mono {
		return html.EscapeString(fmt.Sprintf("'%s Mono', Consolas, monospace", fonts.FontFamily))
	}
	if family == "" {
		return html.EscapeString(fonts.FallbackFontFamily)
	}
	return html.EscapeString(fmt.Sprintf("'%s', %s", family, fonts.FallbackFontFamily))
}
