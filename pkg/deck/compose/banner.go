package compose

import (
	"fmt"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// TitleBanner fills the background and draws the standard slide header: a
// short accent bar, the heading and, when non-empty, a subtitle.
func TitleBanner(s *deck.Slide, th theme.Theme, title, subtitle string) error {
	if err := s.FillBackground(th.Palette.Background); err != nil {
		return err
	}
	if err := s.DrawRect(deck.Box(deck.Inches(0.6), deck.Inches(0.5), deck.Inches(1.5), deck.Points(3)), th.Palette.Blue); err != nil {
		return err
	}
	if err := s.DrawText(title, deck.InchBox(0.6, 0.6, 11, 0.6), deck.TextStyle{
		Size: th.Sizes.Title, Color: th.Palette.Text, Bold: true, Font: th.Fonts.Heading,
	}); err != nil {
		return err
	}
	if subtitle == "" {
		return nil
	}
	return s.DrawText(subtitle, deck.InchBox(0.6, 1.15, 11, 0.4), deck.TextStyle{
		Size: th.Sizes.Subtitle, Color: th.Palette.Muted, Font: th.Fonts.Body,
	})
}

// SectionNumber formats a section ordinal with at least two digits.
func SectionNumber(n int) string { return fmt.Sprintf("%02d", n) }

// SectionDivider draws a full-width band announcing section num of the deck.
func SectionDivider(s *deck.Slide, th theme.Theme, page deck.PageSize, num int, title, subtitle string) error {
	if err := s.FillBackground(th.Palette.Background); err != nil {
		return err
	}
	band := deck.Box(0, deck.Inches(3.2), page.Width, deck.Inches(1.1))
	if err := s.DrawRect(band, th.Palette.Section); err != nil {
		return err
	}
	if err := s.DrawRect(deck.Box(0, band.Top, deck.Inches(0.15), band.Height), th.Palette.Blue); err != nil {
		return err
	}
	if err := s.DrawText(SectionNumber(num), deck.InchBox(0.6, 2.2, 2, 0.8), deck.TextStyle{
		Size: th.Sizes.SectionNumber, Color: th.Palette.Blue, Bold: true, Font: th.Fonts.Heading,
	}); err != nil {
		return err
	}
	if err := s.DrawText(title, deck.InchBox(0.6, 3.25, 12, 0.7), deck.TextStyle{
		Size: th.Sizes.SectionTitle, Color: th.Palette.Text, Bold: true, Font: th.Fonts.Heading,
	}); err != nil {
		return err
	}
	if subtitle == "" {
		return nil
	}
	return s.DrawText(subtitle, deck.InchBox(0.6, 4.4, 10, 0.5), deck.TextStyle{
		Size: th.Sizes.SectionSubtitle, Color: th.Palette.Muted, Font: th.Fonts.Body,
	})
}

// CoverSpec is the content of a deck's opening slide.
type CoverSpec struct {
	Title   string
	Tagline string
	Blurb   string
	Footer  string
	Date    string
}

// Cover draws an opening slide: a full-height accent edge, a divider rule,
// the title and tagline above it and the blurb, footer and date below.
func Cover(s *deck.Slide, th theme.Theme, page deck.PageSize, c CoverSpec) error {
	p := th.Palette
	if err := s.FillBackground(p.Background); err != nil {
		return err
	}
	if err := s.DrawRect(deck.Box(0, 0, deck.Inches(0.15), page.Height), p.Blue); err != nil {
		return err
	}
	if err := s.DrawRect(deck.Box(0, deck.Inches(4.4), page.Width, deck.Points(2)), p.Card); err != nil {
		return err
	}

	texts := []struct {
		text  string
		box   deck.Rect
		style deck.TextStyle
	}{
		{c.Title, deck.InchBox(1, 1.5, 11, 1.2), deck.TextStyle{Size: 60, Color: p.Text, Bold: true, Font: th.Fonts.Heading}},
		{c.Tagline, deck.InchBox(1, 2.7, 11, 0.6), deck.TextStyle{Size: 28, Color: p.Teal, Font: th.Fonts.Heading}},
		{c.Blurb, deck.InchBox(1, 4.7, 8, 0.8), deck.TextStyle{Size: 20, Color: p.Light, Font: th.Fonts.Body}},
		{c.Footer, deck.InchBox(1, 6.2, 10, 0.4), deck.TextStyle{Size: 14, Color: p.Muted, Font: th.Fonts.Body}},
		{c.Date, deck.InchBox(10, 6.5, 2.5, 0.3), deck.TextStyle{Size: 14, Color: p.Muted, Align: deck.AlignEnd, Font: th.Fonts.Body}},
	}
	for _, t := range texts {
		if t.text == "" {
			continue
		}
		if err := s.DrawText(t.text, t.box, t.style); err != nil {
			return err
		}
	}
	return nil
}
