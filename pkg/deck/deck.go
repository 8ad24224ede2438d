package deck

import "github.com/matzehuels/stackdeck/pkg/errors"

// PageSize is the page dimensions shared by every slide of a deck.
type PageSize struct {
	Width  EMU `json:"width"`
	Height EMU `json:"height"`
}

// Widescreen is the 16:9 page used by the bundled decks.
var Widescreen = PageSize{Width: Inches(13.333), Height: Inches(7.5)}

// Bounds returns the full-page rectangle.
func (p PageSize) Bounds() Rect { return Rect{Width: p.Width, Height: p.Height} }

// Meta is document metadata written into the artifact.
type Meta struct {
	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// Deck is an ordered sequence of slides sharing one page size.
//
// Slides are appended with AddSlide; appending freezes the slide before it.
// Freeze seals the whole deck before it is serialized.
type Deck struct {
	Page PageSize
	Meta Meta

	slides []*Slide
	frozen bool
}

// New creates an empty deck. A zero page size selects Widescreen.
func New(page PageSize, meta Meta) *Deck {
	if page.Width == 0 && page.Height == 0 {
		page = Widescreen
	}
	return &Deck{Page: page, Meta: meta}
}

// AddSlide appends a blank slide and freezes the previous one.
func (d *Deck) AddSlide() (*Slide, error) {
	if d.frozen {
		return nil, errors.New(errors.ErrCodeFrozen, "deck is frozen")
	}
	if n := len(d.slides); n > 0 {
		d.slides[n-1].Freeze()
	}
	s := &Slide{index: len(d.slides)}
	d.slides = append(d.slides, s)
	return s, nil
}

// Slides returns the slides in order.
func (d *Deck) Slides() []*Slide {
	out := make([]*Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Freeze seals the deck and all of its slides.
func (d *Deck) Freeze() {
	for _, s := range d.slides {
		s.Freeze()
	}
	d.frozen = true
}

// Frozen reports whether the deck was sealed.
func (d *Deck) Frozen() bool { return d.frozen }

// Validate checks the page size and every recorded element.
func (d *Deck) Validate() error {
	if d.Page.Width <= 0 || d.Page.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"page size must be positive, got %dx%d", d.Page.Width, d.Page.Height)
	}
	for _, s := range d.slides {
		for i, e := range s.elements {
			if err := e.Validate(); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "slide %d element %d", s.index+1, i)
			}
		}
	}
	return nil
}

// Stats summarizes the size of a deck.
type Stats struct {
	Slides    int
	Elements  int
	Shapes    int
	TextBoxes int
}

// Stats counts the slides and instructions of d.
func (d *Deck) Stats() Stats {
	st := Stats{Slides: len(d.slides)}
	for _, s := range d.slides {
		for _, e := range s.elements {
			st.Elements++
			switch e.(type) {
			case *Shape:
				st.Shapes++
			case *TextBox:
				st.TextBoxes++
			}
		}
	}
	return st
}
