package deck

import (
	"fmt"

	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Element is a drawing instruction recorded on a slide. The set of
// implementations is closed: *Shape and *TextBox.
type Element interface {
	Bounds() Rect
	Validate() error
	element()
}

// ShapeKind selects the outline of a Shape.
type ShapeKind int

const (
	KindRect ShapeKind = iota
	KindRoundRect
	KindOval
)

var kindNames = map[ShapeKind]string{
	KindRect:      "rect",
	KindRoundRect: "roundRect",
	KindOval:      "oval",
}

func (k ShapeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k ShapeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name.
func (k *ShapeKind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown shape kind %q", string(b))
}

// DefaultBorderWidth applies to borders that set a color but no width.
var DefaultBorderWidth = Points(1)

// Border is the outline of a Shape.
type Border struct {
	Color Color `json:"color"`
	Width EMU   `json:"width"`
}

// Shape is a filled rectangle, rounded rectangle or oval.
type Shape struct {
	Kind   ShapeKind `json:"kind"`
	Rect   Rect      `json:"rect"`
	Fill   Color     `json:"fill"`
	Border *Border   `json:"border,omitempty"`
}

func (s *Shape) Bounds() Rect { return s.Rect }
func (*Shape) element()       {}

// Validate checks the geometry and border of s.
func (s *Shape) Validate() error {
	if _, ok := kindNames[s.Kind]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown shape kind %d", int(s.Kind))
	}
	if err := s.Rect.Validate(); err != nil {
		return err
	}
	if s.Border != nil && s.Border.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "border width must be positive, got %d", s.Border.Width)
	}
	return nil
}

// ShapeOption customizes a shape before it is recorded.
type ShapeOption func(*Shape)

// WithBorder outlines the shape. A zero width selects DefaultBorderWidth.
func WithBorder(c Color, width EMU) ShapeOption {
	return func(s *Shape) {
		if width == 0 {
			width = DefaultBorderWidth
		}
		s.Border = &Border{Color: c, Width: width}
	}
}

// TextBox is a box of one or more paragraphs laid out top to bottom by the
// renderer. Text wraps within the box width; text taller than the box is
// neither clipped nor shrunk.
type TextBox struct {
	Rect        Rect    `json:"rect"`
	Runs        []Run   `json:"runs"`
	LineSpacing float64 `json:"line_spacing"`
	Bulleted    bool    `json:"bulleted,omitempty"`
	Font        string  `json:"font,omitempty"`
}

func (t *TextBox) Bounds() Rect { return t.Rect }
func (*TextBox) element()       {}

// Validate checks the geometry, spacing and runs of t.
func (t *TextBox) Validate() error {
	if err := t.Rect.Validate(); err != nil {
		return err
	}
	if t.LineSpacing < 1 {
		return errors.New(errors.ErrCodeInvalidText, "line spacing must be at least 1.0, got %g", t.LineSpacing)
	}
	for i, r := range t.Runs {
		if err := r.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidText, err, "run %d", i)
		}
	}
	return nil
}

// Text returns the runs joined by newlines.
func (t *TextBox) Text() string {
	var out string
	for i, r := range t.Runs {
		if i > 0 {
			out += "\n"
		}
		out += r.Text
	}
	return out
}
