package compose

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// Direction is the way an Arrow points.
type Direction int

const (
	Right Direction = iota
	Down
)

// Glyph returns the character drawn for d.
func (d Direction) Glyph() string {
	if d == Down {
		return "▼"
	}
	return "▶"
}

// Arrow draws a connector glyph centered in r.
func Arrow(s *deck.Slide, th theme.Theme, r deck.Rect, d Direction, size float64) error {
	return s.DrawText(d.Glyph(), r, deck.TextStyle{
		Size: orDefault(size, 16), Color: th.Palette.Muted, Align: deck.AlignCenter, Font: th.Fonts.Body,
	})
}

// Badge draws a filled pill with a centered bold label.
func Badge(s *deck.Slide, th theme.Theme, r deck.Rect, label string, fill deck.Color) error {
	if err := s.DrawRoundedCard(r, fill); err != nil {
		return err
	}
	return s.DrawText(label, r, deck.TextStyle{
		Size: 10, Color: th.Palette.Text, Bold: true, Align: deck.AlignCenter, Font: th.Fonts.Body,
	})
}

// Callout draws a full-width strip of centered text, used for summaries
// below a grid.
func Callout(s *deck.Slide, th theme.Theme, r deck.Rect, text string, border, textColor deck.Color, size float64) error {
	if err := s.DrawRoundedCard(r, th.Palette.Card, deck.WithBorder(border, deck.Points(1))); err != nil {
		return err
	}
	inner := deck.Box(r.Left, r.Top+deck.Inches(0.05), r.Width, max(r.Height-deck.Inches(0.1), deck.Points(1)))
	return s.DrawText(text, inner, deck.TextStyle{
		Size: orDefault(size, 12), Color: textColor, Align: deck.AlignCenter, Font: th.Fonts.Body,
	})
}

// FeatureTile draws a small bordered tile with a title, a hairline and a
// short description.
func FeatureTile(s *deck.Slide, th theme.Theme, r deck.Rect, f Feature, accent deck.Color) error {
	pad := deck.Inches(0.2)
	inner := r.Width - 2*pad
	if err := s.DrawRoundedCard(r, th.Palette.Section, deck.WithBorder(accent, deck.Points(1.5))); err != nil {
		return err
	}
	if err := s.DrawText(f.Title, deck.Box(r.Left+pad, r.Top+deck.Inches(0.15), inner, deck.Inches(0.3)), deck.TextStyle{
		Size: 14, Color: accent, Bold: true, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	if err := s.DrawRect(deck.Box(r.Left+pad, r.Top+deck.Inches(0.48), inner, deck.Points(1)), accent); err != nil {
		return err
	}
	return s.DrawText(f.Desc, deck.Box(r.Left+pad, r.Top+deck.Inches(0.6), inner, r.Height-deck.Inches(0.9)), deck.TextStyle{
		Size: 11, Color: th.Palette.Light, Font: th.Fonts.Body,
	})
}

// StepStyle selects how a numbered step arranges its marker and text.
type StepStyle int

const (
	// StepInline puts the number marker left of the title.
	StepInline StepStyle = iota
	// StepStacked centers the marker above a centered title.
	StepStacked
)

// Step draws a numbered tile: a panel, a filled circle with the step number
// and the step's title and description.
func Step(s *deck.Slide, th theme.Theme, r deck.Rect, st StepRow, accent deck.Color, style StepStyle) error {
	if err := s.DrawRoundedCard(r, th.Palette.Section, deck.WithBorder(accent, deck.Points(1.5))); err != nil {
		return err
	}
	numStyle := deck.TextStyle{Size: 18, Color: th.Palette.Text, Bold: true, Align: deck.AlignCenter, Font: th.Fonts.Body}

	if style == StepStacked {
		d := deck.Inches(0.55)
		cx := r.Left + (r.Width-d)/2
		pad := deck.Inches(0.15)
		inner := r.Width - 2*pad
		if err := s.DrawOval(deck.Box(cx, r.Top+deck.Inches(0.15), d, d), accent); err != nil {
			return err
		}
		if err := s.DrawText(st.Number, deck.Box(cx, r.Top+deck.Inches(0.18), d, deck.Inches(0.5)), numStyle); err != nil {
			return err
		}
		if err := s.DrawText(st.Title, deck.Box(r.Left+pad, r.Top+deck.Inches(0.8), inner, deck.Inches(0.3)), deck.TextStyle{
			Size: 12, Color: accent, Bold: true, Align: deck.AlignCenter, Font: th.Fonts.Body,
		}); err != nil {
			return err
		}
		return s.DrawText(st.Desc, deck.Box(r.Left+pad, r.Top+deck.Inches(1.15), inner, r.Height-deck.Inches(1.3)), deck.TextStyle{
			Size: 10, Color: th.Palette.Light, Align: deck.AlignCenter, Font: th.Fonts.Body,
		})
	}

	d := deck.Inches(0.5)
	m := deck.Inches(0.15)
	textLeft := r.Left + deck.Inches(0.8)
	textWidth := r.Width - deck.Inches(1.1)
	if err := s.DrawOval(deck.Box(r.Left+m, r.Top+m, d, d), accent); err != nil {
		return err
	}
	if err := s.DrawText(st.Number, deck.Box(r.Left+m, r.Top+deck.Inches(0.18), d, deck.Inches(0.45)), numStyle); err != nil {
		return err
	}
	if err := s.DrawText(st.Title, deck.Box(textLeft, r.Top+deck.Inches(0.18), textWidth, deck.Inches(0.3)), deck.TextStyle{
		Size: 14, Color: accent, Bold: true, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	return s.DrawText(st.Desc, deck.Box(textLeft, r.Top+deck.Inches(0.55), textWidth, r.Height-deck.Inches(0.8)), deck.TextStyle{
		Size: 11, Color: th.Palette.Light, Font: th.Fonts.Body,
	})
}

// MetricTile draws a large centered figure with a caption beneath it.
func MetricTile(s *deck.Slide, th theme.Theme, r deck.Rect, m Metric, accent deck.Color) error {
	if err := s.DrawRoundedCard(r, th.Palette.Section, deck.WithBorder(accent, deck.Points(2))); err != nil {
		return err
	}
	if err := s.DrawText(m.Value, deck.Box(r.Left, r.Top+deck.Inches(0.1), r.Width, deck.Inches(0.65)), deck.TextStyle{
		Size: th.Sizes.Metric, Color: accent, Bold: true, Align: deck.AlignCenter, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	return s.DrawText(m.Label, deck.Box(r.Left, r.Top+deck.Inches(0.8), r.Width, deck.Inches(0.35)), deck.TextStyle{
		Size: 14, Color: th.Palette.Light, Align: deck.AlignCenter, Font: th.Fonts.Body,
	})
}

// LayerBar draws a wide band describing one layer of a stack, with a status
// badge near its right edge when Status is set.
func LayerBar(s *deck.Slide, th theme.Theme, r deck.Rect, l Layer, accent, status deck.Color) error {
	if err := s.DrawRoundedCard(r, th.Palette.Section, deck.WithBorder(accent, deck.Points(2))); err != nil {
		return err
	}
	textLeft := r.Left + deck.Inches(0.3)
	if err := s.DrawText(l.Title, deck.Box(textLeft, r.Top+deck.Inches(0.12), deck.Inches(4), deck.Inches(0.3)), deck.TextStyle{
		Size: 15, Color: accent, Bold: true, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	if err := s.DrawText(l.Desc, deck.Box(textLeft, r.Top+deck.Inches(0.45), deck.Inches(7), deck.Inches(0.7)), deck.TextStyle{
		Size: 11, Color: th.Palette.Light, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	if l.Status == "" {
		return nil
	}
	badge := deck.Box(r.Right()-deck.Inches(2), r.Top+deck.Inches(0.15), deck.Inches(1.7), deck.Inches(0.28))
	return Badge(s, th, badge, l.Status, status)
}

// Lesson draws one entry of a numbered list: a marker circle with the
// number, a bold title and a one-line description.
func Lesson(s *deck.Slide, th theme.Theme, origin deck.Point, width deck.EMU, st StepRow, accent deck.Color) error {
	d := deck.Inches(0.5)
	if err := s.DrawOval(deck.Box(origin.X, origin.Y+deck.Inches(0.05), d, d), accent); err != nil {
		return err
	}
	if err := s.DrawText(st.Number, deck.Box(origin.X, origin.Y+deck.Inches(0.07), d, deck.Inches(0.45)), deck.TextStyle{
		Size: 18, Color: th.Palette.Text, Bold: true, Align: deck.AlignCenter, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	textLeft := origin.X + deck.Inches(0.7)
	if err := s.DrawText(st.Title, deck.Box(textLeft, origin.Y+deck.Inches(0.02), width, deck.Inches(0.35)), deck.TextStyle{
		Size: 17, Color: accent, Bold: true, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	return s.DrawText(st.Desc, deck.Box(textLeft, origin.Y+deck.Inches(0.4), width, deck.Inches(0.35)), deck.TextStyle{
		Size: 12, Color: th.Palette.Light, Font: th.Fonts.Body,
	})
}
