package sink

import (
	"strings"
	"unicode"

	"github.com/matzehuels/stackdeck/pkg/deck"
)

// lineHeight is the baseline-to-baseline distance as a multiple of the font
// size, matching single spacing in PowerPoint.
const lineHeight = 1.2

// glyphSubstitutes maps characters missing from the bundled fonts to the
// closest glyph they do carry.
var glyphSubstitutes = strings.NewReplacer("▶", "►")

// measureFunc returns the advance width, in points, of s set at size points.
type measureFunc func(s string, size float64, bold bool) float64

// paragraph is a run broken into lines that fit its text box.
type paragraph struct {
	deck.Run
	Lines []string
	// Top is the offset of the first line's top edge from the box top, in points.
	Top float64
}

func (p paragraph) lineStep() float64 { return p.Size * lineHeight }

// layoutText wraps every run of t to the box width and stacks the resulting
// paragraphs top to bottom. Text taller than the box is not clipped.
func layoutText(t *deck.TextBox, measure measureFunc) []paragraph {
	width := t.Rect.Width.Points()
	out := make([]paragraph, 0, len(t.Runs))
	y := 0.0
	for _, r := range t.Runs {
		text := glyphSubstitutes.Replace(r.Text)
		p := paragraph{Run: r, Top: y}
		p.Text = text
		p.Lines = wrap(text, width, func(s string) float64 { return measure(s, r.Size, r.Bold) })
		y += float64(len(p.Lines))*p.lineStep() + deck.SpaceAfter(r.Size, t.LineSpacing)
		out = append(out, p)
	}
	return out
}

// wrap breaks text on spaces so that each line fits width. A single word
// wider than width gets a line of its own. Explicit newlines are kept, and so
// are runs of spaces inside a line, such as the gap after a bullet.
func wrap(text string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, segment := range strings.Split(text, "\n") {
		tokens := spacedWords(segment)
		if len(tokens) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := tokens[0]
		for _, tok := range tokens[1:] {
			if measure(cur+tok) <= width {
				cur += tok
				continue
			}
			lines = append(lines, cur)
			cur = strings.TrimLeftFunc(tok, unicode.IsSpace)
		}
		lines = append(lines, cur)
	}
	return lines
}

// spacedWords splits s into words, each carrying the whitespace that precedes
// it. Trailing whitespace is dropped.
func spacedWords(s string) []string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	var out []string
	start := 0
	inSpace := true
	for i, r := range s {
		space := unicode.IsSpace(r)
		if space && !inSpace {
			out = append(out, s[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// alignX returns the left edge, in points, of a line of the given width.
func alignX(r deck.Rect, a deck.Align, lineWidth float64) float64 {
	left := r.Left.Points()
	switch a {
	case deck.AlignCenter:
		return left + (r.Width.Points()-lineWidth)/2
	case deck.AlignEnd:
		return left + r.Width.Points() - lineWidth
	default:
		return left
	}
}

// cornerRadius is the radius used for rounded rectangles, the same fraction of
// the shorter side that PowerPoint applies by default.
func cornerRadius(r deck.Rect) float64 {
	return 0.16667 * min(r.Width.Points(), r.Height.Points())
}

// slideAt returns the slide at index i or a NOT_FOUND error.
func slideAt(d *deck.Deck, i int) (*deck.Slide, error) {
	if i < 0 || i >= d.Len() {
		return nil, errSlideRange(i, d.Len())
	}
	return d.Slides()[i], nil
}
