package deck

import "github.com/matzehuels/stackdeck/pkg/errors"

// Slide is one page of a deck: a background color and the drawing
// instructions recorded on it, in call order. Later elements stack on top of
// earlier ones.
//
// A slide is owned by the routine populating it. Once frozen, every drawing
// call fails with a FROZEN error.
type Slide struct {
	index      int
	background *Color
	elements   []Element
	frozen     bool
}

// Index returns the zero-based position of the slide in its deck.
func (s *Slide) Index() int { return s.index }

// Background returns the slide background, if one was set.
func (s *Slide) Background() (Color, bool) {
	if s.background == nil {
		return Color{}, false
	}
	return *s.background, true
}

// Elements returns a copy of the recorded instructions.
func (s *Slide) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Len returns the number of recorded instructions.
func (s *Slide) Len() int { return len(s.elements) }

// Freeze makes the slide immutable.
func (s *Slide) Freeze() { s.frozen = true }

// Frozen reports whether the slide accepts further drawing calls.
func (s *Slide) Frozen() bool { return s.frozen }

// FillBackground sets the slide background. The last call wins.
func (s *Slide) FillBackground(c Color) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	s.background = &c
	return nil
}

// DrawRect records a rectangle.
func (s *Slide) DrawRect(r Rect, fill Color, opts ...ShapeOption) error {
	return s.drawShape(KindRect, r, fill, opts)
}

// DrawRoundedCard records a rounded rectangle. It behaves like DrawRect; the
// corner radius is left to the renderer.
func (s *Slide) DrawRoundedCard(r Rect, fill Color, opts ...ShapeOption) error {
	return s.drawShape(KindRoundRect, r, fill, opts)
}

// DrawOval records an ellipse inscribed in r.
func (s *Slide) DrawOval(r Rect, fill Color, opts ...ShapeOption) error {
	return s.drawShape(KindOval, r, fill, opts)
}

func (s *Slide) drawShape(kind ShapeKind, r Rect, fill Color, opts []ShapeOption) error {
	sh := &Shape{Kind: kind, Rect: r, Fill: fill}
	for _, opt := range opts {
		opt(sh)
	}
	return s.Add(sh)
}

// DrawText records a single-run text box.
func (s *Slide) DrawText(text string, r Rect, style TextStyle) error {
	return s.Add(&TextBox{
		Rect:        r,
		Runs:        []Run{PlainLine{Text: text}.resolve(style)},
		LineSpacing: 1,
		Font:        style.Font,
	})
}

// DrawTextBlock records an ordered block of lines. Line defaults are resolved
// against style here, so the recorded runs carry final attributes.
func (s *Slide) DrawTextBlock(lines []Line, r Rect, style BlockStyle) error {
	spacing := style.LineSpacing
	if spacing == 0 {
		spacing = DefaultLineSpacing
	}
	runs, err := ResolveLines(lines, style)
	if err != nil {
		return err
	}
	return s.Add(&TextBox{
		Rect:        r,
		Runs:        runs,
		LineSpacing: spacing,
		Bulleted:    style.Bulleted,
		Font:        style.Font,
	})
}

// Add validates e and appends it to the slide.
func (s *Slide) Add(e Element) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if e == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil element")
	}
	if err := e.Validate(); err != nil {
		return err
	}
	s.elements = append(s.elements, e)
	return nil
}

func (s *Slide) checkOpen() error {
	if s.frozen {
		return errors.New(errors.ErrCodeFrozen, "slide %d is frozen", s.index+1)
	}
	return nil
}
