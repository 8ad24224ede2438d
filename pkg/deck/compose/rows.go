package compose

import (
	"strconv"
	"strings"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/deck/grid"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// Content rows are plain data. Accents are palette names resolved against
// the theme at draw time, so one table renders under any theme.

// Feature is one tile of a feature grid.
type Feature struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Accent string `json:"accent"`
}

// StepRow is one numbered step. An empty Number uses the 1-based index.
type StepRow struct {
	Number string `json:"number,omitempty"`
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Accent string `json:"accent"`
}

// Metric is one figure of a metrics strip.
type Metric struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Accent string `json:"accent"`
}

// Layer is one band of a layered stack.
type Layer struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Accent string `json:"accent"`
	Status string `json:"status,omitempty"`
}

// Stage is one badge of a status chain.
type Stage struct {
	Label  string `json:"label"`
	Accent string `json:"accent"`
}

// Milestone is one dated point on a timeline. Desc may span several lines.
type Milestone struct {
	Date   string `json:"date"`
	Desc   string `json:"desc"`
	Accent string `json:"accent"`
}

// StatusColor maps a layer status to a badge color.
func StatusColor(th theme.Theme, status string) deck.Color {
	switch strings.ToUpper(status) {
	case "BUILT", "DONE", "SHIPPED":
		return th.Palette.Green
	case "DESIGNED", "IN PROGRESS":
		return th.Palette.Blue
	default:
		return th.Palette.Muted
	}
}

func accent(th theme.Theme, name string, i int) (deck.Color, error) {
	if name == "" {
		return th.Cycle(i), nil
	}
	c, err := th.Named(name)
	if err != nil {
		return deck.Color{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "row %d", i)
	}
	return c, nil
}

func number(st StepRow, i int) StepRow {
	if st.Number == "" {
		st.Number = strconv.Itoa(i + 1)
	}
	return st
}

// arrowBetween returns the box between tile r and its right-hand neighbour,
// or false when the grid leaves no gap.
func arrowBetween(g grid.Grid, r deck.Rect, dy, h deck.EMU) (deck.Rect, bool) {
	gap := g.Stride.X - r.Width
	if gap <= 0 {
		return deck.Rect{}, false
	}
	return deck.Box(r.Right(), r.Top+dy, gap, h), true
}

// FeatureGrid places one FeatureTile per row on g.
func FeatureGrid(s *deck.Slide, th theme.Theme, g grid.Grid, w, h deck.EMU, rows []Feature) error {
	return g.Place(len(rows), w, h, func(i int, r deck.Rect) error {
		c, err := accent(th, rows[i].Accent, i)
		if err != nil {
			return err
		}
		return FeatureTile(s, th, r, rows[i], c)
	})
}

// Flow places numbered steps on g and joins neighbours in the same grid row
// with arrows.
func Flow(s *deck.Slide, th theme.Theme, g grid.Grid, w, h deck.EMU, rows []StepRow, style StepStyle) error {
	arrowTop := deck.Inches(0.55)
	if style == StepStacked {
		arrowTop = deck.Inches(0.75)
	}
	return g.Place(len(rows), w, h, func(i int, r deck.Rect) error {
		c, err := accent(th, rows[i].Accent, i)
		if err != nil {
			return err
		}
		if err := Step(s, th, r, number(rows[i], i), c, style); err != nil {
			return err
		}
		col, _ := g.Cell(i)
		if i == len(rows)-1 || col == g.Columns-1 {
			return nil
		}
		if box, ok := arrowBetween(g, r, arrowTop, deck.Inches(0.4)); ok {
			return Arrow(s, th, box, Right, 14)
		}
		return nil
	})
}

// MetricRow places one MetricTile per row on g.
func MetricRow(s *deck.Slide, th theme.Theme, g grid.Grid, w, h deck.EMU, rows []Metric) error {
	return g.Place(len(rows), w, h, func(i int, r deck.Rect) error {
		c, err := accent(th, rows[i].Accent, i)
		if err != nil {
			return err
		}
		return MetricTile(s, th, r, rows[i], c)
	})
}

// Stack places layer bars on g. A negative vertical stride builds the stack
// bottom-up.
func Stack(s *deck.Slide, th theme.Theme, g grid.Grid, w, h deck.EMU, rows []Layer) error {
	return g.Place(len(rows), w, h, func(i int, r deck.Rect) error {
		c, err := accent(th, rows[i].Accent, i)
		if err != nil {
			return err
		}
		return LayerBar(s, th, r, rows[i], c, StatusColor(th, rows[i].Status))
	})
}

// Chain places status badges on g with arrows between consecutive stages.
func Chain(s *deck.Slide, th theme.Theme, g grid.Grid, w, h deck.EMU, rows []Stage) error {
	return g.Place(len(rows), w, h, func(i int, r deck.Rect) error {
		c, err := accent(th, rows[i].Accent, i)
		if err != nil {
			return err
		}
		if err := Badge(s, th, r, rows[i].Label, c); err != nil {
			return err
		}
		if i == len(rows)-1 {
			return nil
		}
		if box, ok := arrowBetween(g, r, 0, h); ok {
			return Arrow(s, th, box, Right, 12)
		}
		return nil
	})
}

// Lessons places a numbered list down g, one entry per row.
func Lessons(s *deck.Slide, th theme.Theme, g grid.Grid, width deck.EMU, rows []StepRow) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for i, row := range rows {
		c, err := accent(th, row.Accent, i)
		if err != nil {
			return err
		}
		if err := Lesson(s, th, g.Position(i), width, number(row, i), c); err != nil {
			return err
		}
	}
	return nil
}

// Timeline offsets within a milestone tile.
var (
	timelineDot       = deck.Inches(0.35)
	timelineDotTop    = deck.Inches(0.9)
	timelinePanelTop  = deck.Inches(1.5)
	timelineDateH     = deck.Inches(0.4)
	timelineAxisWidth = deck.Points(3)
)

// Timeline places one milestone tile per row on g: a date label, a dot on a
// shared horizontal axis and a bordered description panel. The axis runs
// from the first tile's left edge to the last tile's right edge. h must
// leave room for the panel below the dot.
func Timeline(s *deck.Slide, th theme.Theme, g grid.Grid, w, h deck.EMU, rows []Milestone) error {
	if len(rows) == 0 {
		return nil
	}
	if h <= timelinePanelTop {
		return errors.New(errors.ErrCodeInvalidGeometry, "timeline tiles need more than %g in of height", timelinePanelTop.Inches())
	}
	first, last := g.Rect(0, w, h), g.Rect(len(rows)-1, w, h)
	axisY := first.Top + timelineDotTop + timelineDot/2 - timelineAxisWidth/2
	if err := s.DrawRect(deck.Box(first.Left, axisY, last.Right()-first.Left, timelineAxisWidth), th.Palette.Blue); err != nil {
		return err
	}
	return g.Place(len(rows), w, h, func(i int, r deck.Rect) error {
		c, err := accent(th, rows[i].Accent, i)
		if err != nil {
			return err
		}
		return milestoneTile(s, th, r, rows[i], c)
	})
}

func milestoneTile(s *deck.Slide, th theme.Theme, r deck.Rect, m Milestone, c deck.Color) error {
	dot := deck.Box(r.Left+(r.Width-timelineDot)/2, r.Top+timelineDotTop, timelineDot, timelineDot)
	if err := s.DrawOval(dot, c); err != nil {
		return err
	}
	if err := s.DrawText(m.Date, deck.Box(r.Left, r.Top, r.Width, timelineDateH), deck.TextStyle{
		Size: 18, Color: c, Bold: true, Align: deck.AlignCenter, Font: th.Fonts.Body,
	}); err != nil {
		return err
	}
	panel := deck.Box(r.Left, r.Top+timelinePanelTop, r.Width, r.Height-timelinePanelTop)
	if err := s.DrawRoundedCard(panel, th.Palette.Section, deck.WithBorder(c, deck.Points(1.5))); err != nil {
		return err
	}
	pad, top := deck.Inches(0.1), deck.Inches(0.15)
	desc := deck.Box(panel.Left+pad, panel.Top+top, max(panel.Width-2*pad, deck.Points(1)), max(panel.Height-2*top, deck.Points(1)))
	return s.DrawText(m.Desc, desc, deck.TextStyle{
		Size: 12, Color: th.Palette.Light, Align: deck.AlignCenter, Font: th.Fonts.Body,
	})
}
