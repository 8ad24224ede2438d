// Package inspect reads rendered PPTX packages back and summarizes what a
// viewer would find in them.
package inspect

import (
	"os"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
)

// Kinds reported for a shape.
const (
	KindText  = "text"
	KindShape = "shape"
	KindOther = "other"
)

// Shape is one shape found on a slide. Geometry is in EMU.
type Shape struct {
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	Geometry string `json:"geometry,omitempty"` // preset such as "rect" or "ellipse"
	Fill     string `json:"fill,omitempty"`     // "#RRGGBB"
	Left     int64  `json:"left"`
	Top      int64  `json:"top"`
	Width    int64  `json:"width"`
	Height   int64  `json:"height"`
	Text     string `json:"text,omitempty"`
}

// Slide summarizes one slide. The full-page background shape written by
// the PPTX renderer is reported as Background, not as a shape.
type Slide struct {
	Index      int     `json:"index"`
	Background bool    `json:"background"`
	Shapes     []Shape `json:"shapes"`
}

// Report is the result of reading a package.
type Report struct {
	Slides []Slide `json:"slides"`
}

// ShapeCount returns the number of shapes across all slides.
func (r *Report) ShapeCount() int {
	n := 0
	for _, s := range r.Slides {
		n += len(s.Shapes)
	}
	return n
}

// Texts returns the text of every text shape, in slide and z order.
func (r *Report) Texts() []string {
	var out []string
	for _, s := range r.Slides {
		for _, sh := range s.Shapes {
			if sh.Kind == KindText {
				out = append(out, sh.Text)
			}
		}
	}
	return out
}

// File reads the PPTX package at path.
func File(path string) (*Report, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Bytes(data)
}

// Bytes reads a PPTX package held in memory.
func Bytes(data []byte) (*Report, error) {
	pkg, err := readPackage(data)
	if err != nil {
		return nil, err
	}
	return pkg.report(), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return data, nil
}

func (p *pptxPackage) report() *Report {
	rep := &Report{Slides: make([]Slide, 0, len(p.slides))}
	for i, s := range p.slides {
		out := Slide{Index: i, Shapes: []Shape{}}
		for j := range s.Shapes {
			sh := &s.Shapes[j]
			if sh.name() == sink.BackgroundShapeName {
				out.Background = true
				continue
			}
			out.Shapes = append(out.Shapes, describe(sh))
		}
		rep.Slides = append(rep.Slides, out)
	}
	return rep
}

func describe(sh *xmlShape) Shape {
	r := sh.rect()
	out := Shape{
		Kind:     sh.kind(),
		Name:     sh.name(),
		Geometry: sh.Props.Geometry.Preset,
		Left:     int64(r.Left),
		Top:      int64(r.Top),
		Width:    int64(r.Width),
		Height:   int64(r.Height),
		Text:     sh.text(),
	}
	if c, ok := sh.Props.Fill.color(); ok {
		out.Fill = c.String()
	}
	return out
}
