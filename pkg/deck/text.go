package deck

import (
	"fmt"

	"github.com/matzehuels/stackdeck/pkg/errors"
)

// BulletGlyph prefixes every run of a bulleted text block.
const BulletGlyph = "•  "

// Align is the horizontal alignment of a run within its box.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

var alignNames = map[Align]string{
	AlignStart:  "start",
	AlignCenter: "center",
	AlignEnd:    "end",
}

func (a Align) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// MarshalText encodes the alignment by name.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText decodes an alignment name.
func (a *Align) UnmarshalText(b []byte) error {
	for k, v := range alignNames {
		if v == string(b) {
			*a = k
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidText, "unknown alignment %q", string(b))
}

// TextStyle holds the font attributes shared by a text box or block.
type TextStyle struct {
	Size  float64 // points
	Color Color
	Bold  bool
	Align Align
	Font  string // typeface name; empty uses the renderer default
}

// Run is one paragraph of text with fully resolved attributes.
type Run struct {
	Text  string  `json:"text"`
	Size  float64 `json:"size"`
	Color Color   `json:"color"`
	Bold  bool    `json:"bold,omitempty"`
	Align Align   `json:"align"`
}

// Validate checks the font size. Empty text is allowed: it still takes up a line.
func (r Run) Validate() error {
	if r.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidText, "font size must be positive, got %g", r.Size)
	}
	return nil
}

// Line is one entry of a text block. It is either a PlainLine, which inherits
// the block's color and weight, or a StyledLine, which overrides both.
type Line interface {
	resolve(block TextStyle) Run
}

// PlainLine is text drawn with the block defaults.
type PlainLine struct {
	Text string
}

// StyledLine is text with its own weight and color.
type StyledLine struct {
	Text  string
	Bold  bool
	Color Color
}

func (l PlainLine) resolve(s TextStyle) Run {
	return Run{Text: l.Text, Size: s.Size, Color: s.Color, Bold: s.Bold, Align: s.Align}
}

func (l StyledLine) resolve(s TextStyle) Run {
	return Run{Text: l.Text, Size: s.Size, Color: l.Color, Bold: l.Bold, Align: s.Align}
}

// Plain returns a PlainLine.
func Plain(text string) Line { return PlainLine{Text: text} }

// Styled returns a StyledLine.
func Styled(text string, bold bool, c Color) Line {
	return StyledLine{Text: text, Bold: bold, Color: c}
}

// Lines wraps each string in a PlainLine.
func Lines(texts ...string) []Line {
	out := make([]Line, len(texts))
	for i, t := range texts {
		out[i] = PlainLine{Text: t}
	}
	return out
}

// BlockStyle configures a multi-line text block.
type BlockStyle struct {
	TextStyle

	// LineSpacing is the paragraph spacing multiplier, at least 1.0.
	// Zero selects DefaultLineSpacing.
	LineSpacing float64

	// Bulleted prefixes every run with BulletGlyph.
	Bulleted bool
}

// DefaultLineSpacing is used when a BlockStyle leaves LineSpacing unset.
const DefaultLineSpacing = 1.4

// ResolveLines turns lines into runs using style as the defaults. Bullets are
// applied here, so the prefix is part of every run's text regardless of any
// per-line override. A nil line is an INVALID_TEXT error.
func ResolveLines(lines []Line, style BlockStyle) ([]Run, error) {
	runs := make([]Run, 0, len(lines))
	for i, l := range lines {
		if l == nil {
			return nil, errors.New(errors.ErrCodeInvalidText, "line %d is nil", i)
		}
		r := l.resolve(style.TextStyle)
		if style.Bulleted {
			r.Text = BulletGlyph + r.Text
		}
		runs = append(runs, r)
	}
	return runs, nil
}

// SpaceAfter returns the gap left below each paragraph of a block, derived
// from the font size and the spacing multiplier.
func SpaceAfter(size, lineSpacing float64) float64 {
	if lineSpacing <= 1 {
		return 0
	}
	return size * (lineSpacing - 1)
}
