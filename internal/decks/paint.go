package decks

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/deck/compose"
	"github.com/matzehuels/stackdeck/pkg/deck/grid"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// painter draws onto one slide and keeps the first error. Every method is a
// no-op once an error was recorded, so slide functions read top to bottom
// without checking after each call.
type painter struct {
	s    *deck.Slide
	th   theme.Theme
	page deck.PageSize
	err  error
}

type slideFunc func(p *painter)

// assemble builds a widescreen deck with one slide per fn and freezes it.
func assemble(meta deck.Meta, th theme.Theme, slides ...slideFunc) (*deck.Deck, error) {
	d := deck.New(deck.Widescreen, meta)
	for i, fn := range slides {
		s, err := d.AddSlide()
		if err != nil {
			return nil, err
		}
		p := &painter{s: s, th: th, page: d.Page}
		fn(p)
		if p.err != nil {
			return nil, errors.Wrap(errors.GetCode(p.err), p.err, "%s slide %d", meta.Title, i+1)
		}
	}
	d.Freeze()
	return d, nil
}

func (p *painter) do(fn func() error) {
	if p.err == nil {
		p.err = fn()
	}
}

func (p *painter) background() {
	p.do(func() error { return p.s.FillBackground(p.th.Palette.Background) })
}

func (p *painter) banner(title, subtitle string) {
	p.do(func() error { return compose.TitleBanner(p.s, p.th, title, subtitle) })
}

func (p *painter) section(num int, title, subtitle string) {
	p.do(func() error { return compose.SectionDivider(p.s, p.th, p.page, num, title, subtitle) })
}

func (p *painter) rect(r deck.Rect, fill deck.Color) {
	p.do(func() error { return p.s.DrawRect(r, fill) })
}

// panel is a section-colored rounded card with a border of weight points.
func (p *painter) panel(r deck.Rect, border deck.Color, weight float64) {
	p.do(func() error {
		return p.s.DrawRoundedCard(r, p.th.Palette.Section, deck.WithBorder(border, deck.Points(weight)))
	})
}

// strip is a darker full-width panel used for one-line summaries.
func (p *painter) strip(r deck.Rect, border deck.Color, weight float64) {
	p.do(func() error {
		return p.s.DrawRoundedCard(r, p.th.Palette.Card, deck.WithBorder(border, deck.Points(weight)))
	})
}

func (p *painter) oval(r deck.Rect, fill deck.Color) {
	p.do(func() error { return p.s.DrawOval(r, fill) })
}

func (p *painter) text(s string, r deck.Rect, st deck.TextStyle) {
	p.do(func() error { return p.s.DrawText(s, r, st) })
}

func (p *painter) block(lines []deck.Line, r deck.Rect, st deck.BlockStyle) {
	p.do(func() error { return p.s.DrawTextBlock(lines, r, st) })
}

func (p *painter) card(r deck.Rect, c compose.CardSpec) {
	p.do(func() error { return compose.Card(p.s, p.th, r, c) })
}

func (p *painter) badge(r deck.Rect, label string, fill deck.Color) {
	p.do(func() error { return compose.Badge(p.s, p.th, r, label, fill) })
}

func (p *painter) arrow(r deck.Rect, d compose.Direction, size float64) {
	p.do(func() error { return compose.Arrow(p.s, p.th, r, d, size) })
}

func (p *painter) callout(r deck.Rect, text string, border, color deck.Color, size float64) {
	p.do(func() error { return compose.Callout(p.s, p.th, r, text, border, color, size) })
}

func (p *painter) features(g grid.Grid, w, h float64, rows []compose.Feature) {
	p.do(func() error { return compose.FeatureGrid(p.s, p.th, g, deck.Inches(w), deck.Inches(h), rows) })
}

func (p *painter) flow(g grid.Grid, w, h float64, rows []compose.StepRow, style compose.StepStyle) {
	p.do(func() error { return compose.Flow(p.s, p.th, g, deck.Inches(w), deck.Inches(h), rows, style) })
}

func (p *painter) metrics(g grid.Grid, w, h float64, rows []compose.Metric) {
	p.do(func() error { return compose.MetricRow(p.s, p.th, g, deck.Inches(w), deck.Inches(h), rows) })
}

func (p *painter) stack(g grid.Grid, w, h float64, rows []compose.Layer) {
	p.do(func() error { return compose.Stack(p.s, p.th, g, deck.Inches(w), deck.Inches(h), rows) })
}

func (p *painter) chain(g grid.Grid, w, h float64, rows []compose.Stage) {
	p.do(func() error { return compose.Chain(p.s, p.th, g, deck.Inches(w), deck.Inches(h), rows) })
}

func (p *painter) timeline(g grid.Grid, w, h float64, rows []compose.Milestone) {
	p.do(func() error { return compose.Timeline(p.s, p.th, g, deck.Inches(w), deck.Inches(h), rows) })
}

func (p *painter) lessons(g grid.Grid, width float64, rows []compose.StepRow) {
	p.do(func() error { return compose.Lessons(p.s, p.th, g, deck.Inches(width), rows) })
}

// color resolves a palette name. Names in the builders are fixed, so a
// failure is recorded like any drawing error.
func (p *painter) color(name string) deck.Color {
	c, err := p.th.Named(name)
	if err != nil && p.err == nil {
		p.err = err
	}
	return c
}

func (p *painter) plain(size float64, c deck.Color) deck.TextStyle {
	return deck.TextStyle{Size: size, Color: c, Font: p.th.Fonts.Body}
}

func (p *painter) strong(size float64, c deck.Color) deck.TextStyle {
	return deck.TextStyle{Size: size, Color: c, Bold: true, Font: p.th.Fonts.Body}
}

func (p *painter) heading(size float64, c deck.Color) deck.TextStyle {
	return deck.TextStyle{Size: size, Color: c, Bold: true, Font: p.th.Fonts.Heading}
}

func (p *painter) mono(size float64, c deck.Color) deck.TextStyle {
	return deck.TextStyle{Size: size, Color: c, Font: p.th.Fonts.Mono}
}

func centered(st deck.TextStyle) deck.TextStyle {
	st.Align = deck.AlignCenter
	return st
}

func flush(st deck.TextStyle) deck.TextStyle {
	st.Align = deck.AlignEnd
	return st
}

func light(st deck.TextStyle) deck.TextStyle {
	st.Bold = false
	return st
}

// line is a content row for a text block: a plain string or a styled line
// whose color is a palette name.
type line struct {
	Text  string
	Bold  bool
	Color string
}

func (p *painter) lines(rows []line) []deck.Line {
	out := make([]deck.Line, len(rows))
	for i, r := range rows {
		if r.Color == "" && !r.Bold {
			out[i] = deck.Plain(r.Text)
			continue
		}
		c := p.th.Palette.Text
		if r.Color != "" {
			c = p.color(r.Color)
		}
		out[i] = deck.Styled(r.Text, r.Bold, c)
	}
	return out
}

func plain(texts ...string) []line {
	out := make([]line, len(texts))
	for i, t := range texts {
		out[i] = line{Text: t}
	}
	return out
}

// cardRow is a titled, bulleted card. Accent is a palette name.
type cardRow struct {
	X, Y, W, H float64
	Title      string
	Accent     string
	Body       []line
	TitleSize  float64
	BodySize   float64
}

func (p *painter) cards(layout *compose.CardLayout, rows ...cardRow) {
	for _, c := range rows {
		p.card(deck.InchBox(c.X, c.Y, c.W, c.H), compose.CardSpec{
			Title:     c.Title,
			Body:      p.lines(c.Body),
			Accent:    p.color(c.Accent),
			TitleSize: c.TitleSize,
			BodySize:  c.BodySize,
			Layout:    layout,
		})
	}
}
