package inspect

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
)

// DefaultThumbnailWidth is the thumbnail width in pixels when none is given.
const DefaultThumbnailWidth = 960

// defaultTextSize applies to runs without a size, as in PowerPoint.
const defaultTextSize = 18.0

// Thumbnail rasterizes one slide of the package at path and returns it as
// PNG. The slide is rebuilt from the shapes in the package and drawn by the
// PNG renderer; width is in pixels and zero selects DefaultThumbnailWidth.
func Thumbnail(path string, slide, width int) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	pkg, err := readPackage(data)
	if err != nil {
		return nil, err
	}
	if n := len(pkg.slides); slide < 0 || slide >= n {
		return nil, errors.New(errors.ErrCodeNotFound, "slide %d out of range (package has %d)", slide+1, n)
	}
	if width == 0 {
		width = DefaultThumbnailWidth
	}
	if width < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %d", width)
	}

	d, err := pkg.rebuild(slide)
	if err != nil {
		return nil, err
	}
	return sink.RenderPNG(d, sink.WithDPI(float64(width)/d.Page.Width.Inches()))
}

// rebuild returns a one-slide deck holding the shapes of slide i. Shapes
// without a solid fill or with an empty extent are skipped.
func (p *pptxPackage) rebuild(i int) (*deck.Deck, error) {
	d := deck.New(p.page, deck.Meta{})
	s, err := d.AddSlide()
	if err != nil {
		return nil, err
	}
	for j := range p.slides[i].Shapes {
		sh := &p.slides[i].Shapes[j]
		if sh.rect().Validate() != nil {
			continue
		}
		if sh.name() == sink.BackgroundShapeName {
			if c, ok := sh.Props.Fill.color(); ok {
				err = s.FillBackground(c)
			}
		} else {
			switch sh.kind() {
			case KindText:
				err = s.Add(sh.textBox())
			case KindShape:
				if e := sh.shape(); e != nil {
					err = s.Add(e)
				}
			}
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "slide %d shape %q", i+1, sh.name())
		}
	}
	d.Freeze()
	return d, nil
}

var presetKinds = map[string]deck.ShapeKind{
	"rect":      deck.KindRect,
	"roundRect": deck.KindRoundRect,
	"ellipse":   deck.KindOval,
}

func (sh *xmlShape) shape() *deck.Shape {
	fill, ok := sh.Props.Fill.color()
	if !ok {
		return nil
	}
	out := &deck.Shape{Kind: presetKinds[sh.Props.Geometry.Preset], Rect: sh.rect(), Fill: fill}
	if ln := sh.Props.Line; ln != nil && ln.Width > 0 {
		if c, ok := ln.Fill.color(); ok {
			out.Border = &deck.Border{Color: c, Width: deck.EMU(ln.Width)}
		}
	}
	return out
}

// textBox converts each paragraph to one run, taking its attributes from the
// paragraph's first text run.
func (sh *xmlShape) textBox() *deck.TextBox {
	tb := &deck.TextBox{Rect: sh.rect(), LineSpacing: 1}
	if sh.Body == nil {
		return tb
	}
	size := defaultTextSize
	for _, p := range sh.Body.Paragraphs {
		run := deck.Run{Color: deck.RGB(0, 0, 0), Align: alignments[p.Props.Align]}
		if len(p.Runs) > 0 {
			rp := p.Runs[0].Props
			if rp.Size > 0 {
				size = float64(rp.Size) / 100
			}
			run.Bold = rp.Bold == "1"
			if c, ok := rp.Fill.color(); ok {
				run.Color = c
			}
			if tb.Font == "" {
				tb.Font = rp.Latin.Typeface
			}
		}
		run.Size = size
		run.Text = p.text()
		if sa := p.Props.SpaceAfter; sa != nil && tb.LineSpacing == 1 && sa.Val > 0 {
			tb.LineSpacing = 1 + float64(sa.Val)/100/size
		}
		tb.Runs = append(tb.Runs, run)
	}
	return tb
}

var alignments = map[string]deck.Align{
	"l":   deck.AlignStart,
	"ctr": deck.AlignCenter,
	"r":   deck.AlignEnd,
}
