package inspect

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"path"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// pptxPackage is the slide content of a package, decoded from the slide
// parts themselves. GoPPT's reader skips textless rectangles, which is what
// backgrounds and rules are written as.
type pptxPackage struct {
	page   deck.PageSize
	slides []xmlSlide
}

type xmlPresentation struct {
	Size struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type xmlRelationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xmlSlide struct {
	Shapes []xmlShape `xml:"cSld>spTree>sp"`
}

type xmlShape struct {
	NonVisual struct {
		Props struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
		ShapeProps struct {
			TxBox string `xml:"txBox,attr"`
		} `xml:"cNvSpPr"`
	} `xml:"nvSpPr"`
	Props struct {
		Offset struct {
			X int64 `xml:"x,attr"`
			Y int64 `xml:"y,attr"`
		} `xml:"xfrm>off"`
		Extent struct {
			Cx int64 `xml:"cx,attr"`
			Cy int64 `xml:"cy,attr"`
		} `xml:"xfrm>ext"`
		Geometry struct {
			Preset string `xml:"prst,attr"`
		} `xml:"prstGeom"`
		Fill *xmlSolidFill `xml:"solidFill"`
		Line *xmlLine      `xml:"ln"`
	} `xml:"spPr"`
	Body *struct {
		Paragraphs []xmlParagraph `xml:"p"`
	} `xml:"txBody"`
}

type xmlSolidFill struct {
	RGB struct {
		Val string `xml:"val,attr"`
	} `xml:"srgbClr"`
}

type xmlLine struct {
	Width int64         `xml:"w,attr"`
	Fill  *xmlSolidFill `xml:"solidFill"`
}

type xmlParagraph struct {
	Props struct {
		Align      string `xml:"algn,attr"`
		SpaceAfter *struct {
			Val int `xml:"val,attr"`
		} `xml:"spcAft>spcPts"`
	} `xml:"pPr"`
	Runs []xmlRun `xml:"r"`
}

type xmlRun struct {
	Props struct {
		Size  int           `xml:"sz,attr"` // hundredths of a point
		Bold  string        `xml:"b,attr"`
		Fill  *xmlSolidFill `xml:"solidFill"`
		Latin struct {
			Typeface string `xml:"typeface,attr"`
		} `xml:"latin"`
	} `xml:"rPr"`
	Text string `xml:"t"`
}

// readPackage validates data with GoPPT's reader, then decodes the slides
// in presentation order.
func readPackage(data []byte) (*pptxPackage, error) {
	pres, err := ppt.ReadFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read package")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open package")
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var doc xmlPresentation
	if err := decodeEntry(files, "ppt/presentation.xml", &doc); err != nil {
		return nil, err
	}
	var rels xmlRelationships
	if err := decodeEntry(files, "ppt/_rels/presentation.xml.rels", &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Rels))
	for _, r := range rels.Rels {
		targets[r.ID] = partName("ppt", r.Target)
	}

	pkg := &pptxPackage{page: deck.PageSize{Width: deck.EMU(doc.Size.Cx), Height: deck.EMU(doc.Size.Cy)}}
	for _, id := range doc.SlideIDs {
		name, ok := targets[id.RelID]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "no relationship %q for slide %d", id.RelID, len(pkg.slides)+1)
		}
		var s xmlSlide
		if err := decodeEntry(files, name, &s); err != nil {
			return nil, err
		}
		pkg.slides = append(pkg.slides, s)
	}
	if n := pres.GetSlideCount(); n != len(pkg.slides) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "slide list has %d entries, reader found %d slides", len(pkg.slides), n)
	}
	return pkg, nil
}

// partName resolves a relationship target against the directory of its source.
func partName(dir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(dir, target)
}

func decodeEntry(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "package has no %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "open %s", name)
	}
	defer rc.Close()
	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", name)
	}
	return nil
}

func (f *xmlSolidFill) color() (deck.Color, bool) {
	if f == nil {
		return deck.Color{}, false
	}
	c, err := deck.ParseColor(f.RGB.Val)
	return c, err == nil
}

func (sh *xmlShape) name() string { return sh.NonVisual.Props.Name }

func (sh *xmlShape) rect() deck.Rect {
	p := sh.Props
	return deck.Box(deck.EMU(p.Offset.X), deck.EMU(p.Offset.Y), deck.EMU(p.Extent.Cx), deck.EMU(p.Extent.Cy))
}

func (sh *xmlShape) kind() string {
	switch {
	case sh.NonVisual.ShapeProps.TxBox == "1":
		return KindText
	case sh.Props.Geometry.Preset != "":
		return KindShape
	default:
		return KindOther
	}
}

// text joins the paragraphs with newlines.
func (sh *xmlShape) text() string {
	if sh.Body == nil {
		return ""
	}
	lines := make([]string, len(sh.Body.Paragraphs))
	for i, p := range sh.Body.Paragraphs {
		lines[i] = p.text()
	}
	return strings.Join(lines, "\n")
}

func (p xmlParagraph) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
