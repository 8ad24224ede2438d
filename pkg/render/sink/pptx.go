package sink

import (
	"bytes"
	"math"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// BackgroundShapeName names the full-page shape that carries a slide's
// background color in PPTX output.
const BackgroundShapeName = "stackdeck:background"

// PPTXOption configures PPTX rendering.
type PPTXOption func(*pptxRenderer)

type pptxRenderer struct {
	stamp   time.Time
	creator string
}

// WithPPTXTimestamp sets the creation and modification time recorded in the
// package (default Epoch).
func WithPPTXTimestamp(t time.Time) PPTXOption {
	return func(r *pptxRenderer) { r.stamp = t }
}

// WithPPTXCreator sets the document creator property.
func WithPPTXCreator(name string) PPTXOption {
	return func(r *pptxRenderer) { r.creator = name }
}

var shapeTypes = map[deck.ShapeKind]ppt.AutoShapeType{
	deck.KindRect:      ppt.AutoShapeRectangle,
	deck.KindRoundRect: ppt.AutoShapeRoundedRect,
	deck.KindOval:      ppt.AutoShapeEllipse,
}

// RenderPPTX serializes d as a PowerPoint 2007+ package.
//
// Slides are written in order and elements in call order, so later elements
// stack above earlier ones. The package is normalized before it is returned:
// rendering the same deck twice yields identical bytes.
func RenderPPTX(d *deck.Deck, opts ...PPTXOption) ([]byte, error) {
	r := pptxRenderer{stamp: Epoch, creator: d.Meta.Author}
	for _, opt := range opts {
		opt(&r)
	}
	if d.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "deck has no slides")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = d.Meta.Title
	props.Creator = r.creator
	props.Subject = d.Meta.Subject

	for i, s := range d.Slides() {
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		if bg, ok := s.Background(); ok {
			addShape(slide, background(d.Page, bg))
		}
		for _, e := range s.Elements() {
			switch v := e.(type) {
			case *deck.Shape:
				addShape(slide, autoShape(v))
			case *deck.TextBox:
				writeTextBox(slide, v)
			}
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "create pptx writer")
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write pptx")
	}
	return normalizePackage(buf.Bytes(), d.Page, r.stamp)
}

func background(page deck.PageSize, c deck.Color) *ppt.AutoShape {
	a := ppt.NewAutoShape().SetAutoShapeType(ppt.AutoShapeRectangle)
	a.SetSolidFill(ppt.NewColor(c.ARGB()))
	a.SetName(BackgroundShapeName)
	a.SetPosition(0, 0)
	a.SetSize(int64(page.Width), int64(page.Height))
	a.GetBorder().Style = ppt.BorderNone
	return a
}

func autoShape(s *deck.Shape) *ppt.AutoShape {
	a := ppt.NewAutoShape().SetAutoShapeType(shapeTypes[s.Kind])
	a.SetSolidFill(ppt.NewColor(s.Fill.ARGB()))
	a.SetPosition(int64(s.Rect.Left), int64(s.Rect.Top))
	a.SetSize(int64(s.Rect.Width), int64(s.Rect.Height))

	b := a.GetBorder()
	if s.Border == nil {
		b.Style = ppt.BorderNone
		return a
	}
	b.Style = ppt.BorderSolid
	b.Color = ppt.NewColor(s.Border.Color.ARGB())
	b.Width = int(s.Border.Width) // EMU
	return a
}

func writeTextBox(slide *ppt.Slide, t *deck.TextBox) {
	rt := slide.CreateRichTextShape()
	rt.SetOffsetX(int64(t.Rect.Left)).SetOffsetY(int64(t.Rect.Top))
	rt.SetWidth(int64(t.Rect.Width)).SetHeight(int64(t.Rect.Height))
	rt.SetWordWrap(true)

	for i, run := range t.Runs {
		if i > 0 {
			rt.CreateParagraph()
		}
		tr := rt.CreateTextRun(run.Text)
		tr.GetFont().SetSize(int(math.Round(run.Size))).SetBold(run.Bold).SetColor(ppt.NewColor(run.Color.ARGB()))
		if t.Font != "" {
			tr.GetFont().Name = t.Font
		}

		para := rt.GetActiveParagraph()
		para.SetAlignment(ppt.NewAlignment().SetHorizontal(horizontal(run.Align)))
		// spcPts is in hundredths of a point.
		if after := deck.SpaceAfter(run.Size, t.LineSpacing); after > 0 {
			para.SetSpaceAfter(int(math.Round(after * 100)))
		}
	}
}

func horizontal(a deck.Align) ppt.HorizontalAlignment {
	switch a {
	case deck.AlignCenter:
		return ppt.HorizontalCenter
	case deck.AlignEnd:
		return ppt.HorizontalRight
	default:
		return ppt.HorizontalLeft
	}
}
