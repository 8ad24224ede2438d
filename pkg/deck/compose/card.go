package compose

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// CardLayout holds the fixed offsets of a card's parts, measured from the
// card's top-left corner.
type CardLayout struct {
	Pad         deck.EMU // left and right inset of title, separator and body
	TitleTop    deck.EMU
	TitleHeight deck.EMU
	RuleTop     deck.EMU
	RuleWeight  deck.EMU
	BodyTop     deck.EMU
	Header      deck.EMU // card height minus body height
	Border      deck.EMU
	LineSpacing float64
}

// CompactCard is the default card layout.
var CompactCard = CardLayout{
	Pad:         deck.Inches(0.2),
	TitleTop:    deck.Inches(0.12),
	TitleHeight: deck.Inches(0.35),
	RuleTop:     deck.Inches(0.48),
	RuleWeight:  deck.Points(1.5),
	BodyTop:     deck.Inches(0.58),
	Header:      deck.Inches(0.7),
	Border:      deck.Points(1.5),
	LineSpacing: 1.35,
}

// RoomyCard gives larger cards more breathing room around the title.
var RoomyCard = CardLayout{
	Pad:         deck.Inches(0.25),
	TitleTop:    deck.Inches(0.15),
	TitleHeight: deck.Inches(0.4),
	RuleTop:     deck.Inches(0.55),
	RuleWeight:  deck.Points(1.5),
	BodyTop:     deck.Inches(0.65),
	Header:      deck.Inches(0.85),
	Border:      deck.Points(1.5),
	LineSpacing: 1.4,
}

// Regions returns the title, separator and body boxes for a card at r.
func (l CardLayout) Regions(r deck.Rect) (title, rule, body deck.Rect) {
	inner := r.Width - 2*l.Pad
	title = deck.Box(r.Left+l.Pad, r.Top+l.TitleTop, inner, l.TitleHeight)
	rule = deck.Box(r.Left+l.Pad, r.Top+l.RuleTop, inner, l.RuleWeight)
	body = deck.Box(r.Left+l.Pad, r.Top+l.BodyTop, inner, r.Height-l.Header)
	return title, rule, body
}

// CardSpec is the content of a card.
type CardSpec struct {
	Title  string
	Body   []deck.Line
	Accent deck.Color

	// TitleSize and BodySize default to the theme's card sizes.
	TitleSize float64
	BodySize  float64

	// Layout defaults to CompactCard.
	Layout *CardLayout
}

// Card draws a bordered panel with a title, a separator and a bulleted body.
// It records exactly four instructions in that order, even when Body is
// empty. Geometry is checked before anything is drawn, so a failing card
// leaves the slide untouched.
func Card(s *deck.Slide, th theme.Theme, r deck.Rect, c CardSpec) error {
	l := CompactCard
	if c.Layout != nil {
		l = *c.Layout
	}
	titleSize := orDefault(c.TitleSize, th.Sizes.CardTitle)
	bodySize := orDefault(c.BodySize, th.Sizes.CardBody)

	title, rule, body := l.Regions(r)
	for _, part := range []deck.Rect{r, title, rule, body} {
		if err := part.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "card %q", c.Title)
		}
	}

	if err := s.DrawRoundedCard(r, th.Palette.Section, deck.WithBorder(c.Accent, l.Border)); err != nil {
		return err
	}
	if err := s.DrawText(c.Title, title, deck.TextStyle{
		Size: titleSize, Color: c.Accent, Bold: true, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	if err := s.DrawRect(rule, c.Accent); err != nil {
		return err
	}
	return s.DrawTextBlock(c.Body, body, deck.BlockStyle{
		TextStyle:   deck.TextStyle{Size: bodySize, Color: th.Palette.Text, Font: th.Fonts.Body},
		LineSpacing: l.LineSpacing,
		Bulleted:    true,
	})
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
