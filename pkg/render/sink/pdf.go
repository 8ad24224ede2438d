package sink

import (
	"bytes"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/fonts"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	stamp   time.Time
	creator string
}

// WithPDFTimestamp sets the creation and modification dates (default Epoch).
func WithPDFTimestamp(t time.Time) PDFOption { return func(r *pdfRenderer) { r.stamp = t } }

// WithPDFCreator sets the creator recorded in the document info.
func WithPDFCreator(name string) PDFOption { return func(r *pdfRenderer) { r.creator = name } }

// PDF text is set in the core fonts, so no font program is embedded.
const (
	pdfFamily     = "Helvetica"
	pdfMonoFamily = "Courier"
)

// pdfSubstitutes maps glyphs outside cp1252 to ASCII stand-ins.
var pdfSubstitutes = strings.NewReplacer(
	"▶", ">", "►", ">", "▼", "v",
	"→", "->", "←", "<-",
	"─", "-", "├", "+", "└", "+",
)

// RenderPDF renders every slide as one page of a PDF document. Text uses the
// Helvetica and Courier core fonts in the cp1252 encoding.
func RenderPDF(d *deck.Deck, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{stamp: Epoch, creator: d.Meta.Author}
	for _, opt := range opts {
		opt(&r)
	}
	if d.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "deck has no slides")
	}

	w, h := d.Page.Width.Points(), d.Page.Height.Points()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetCreationDate(r.stamp)
	pdf.SetModificationDate(r.stamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(d.Meta.Title, true)
	pdf.SetAuthor(d.Meta.Author, true)
	pdf.SetSubject(d.Meta.Subject, true)
	pdf.SetCreator(r.creator, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	encode := func(s string) string { return tr(pdfSubstitutes.Replace(s)) }

	for _, s := range d.Slides() {
		pdf.AddPage()
		if bg, ok := s.Background(); ok {
			pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
			pdf.Rect(0, 0, w, h, "F")
		}
		for _, e := range s.Elements() {
			switch v := e.(type) {
			case *deck.Shape:
				drawPDFShape(pdf, v)
			case *deck.TextBox:
				drawPDFText(pdf, v, encode)
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "build pdf")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write pdf")
	}
	return buf.Bytes(), nil
}

func drawPDFShape(pdf *gofpdf.Fpdf, s *deck.Shape) {
	pdf.SetFillColor(int(s.Fill.R), int(s.Fill.G), int(s.Fill.B))
	style := "F"
	if s.Border != nil {
		c := s.Border.Color
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetLineWidth(s.Border.Width.Points())
		style = "FD"
	}
	x, y := s.Rect.Left.Points(), s.Rect.Top.Points()
	w, h := s.Rect.Width.Points(), s.Rect.Height.Points()
	switch s.Kind {
	case deck.KindOval:
		pdf.Ellipse(x+w/2, y+h/2, w/2, h/2, 0, style)
	case deck.KindRoundRect:
		pdf.RoundedRect(x, y, w, h, cornerRadius(s.Rect), "1234", style)
	default:
		pdf.Rect(x, y, w, h, style)
	}
}

func drawPDFText(pdf *gofpdf.Fpdf, t *deck.TextBox, encode func(string) string) {
	family := pdfFamily
	if fonts.For(t.Font, false) == fonts.Mono {
		family = pdfMonoFamily
	}
	measure := func(s string, size float64, bold bool) float64 {
		pdf.SetFont(family, pdfStyle(bold), size)
		return pdf.GetStringWidth(encode(s))
	}
	top := t.Rect.Top.Points()
	for _, p := range layoutText(t, measure) {
		for i, line := range p.Lines {
			x := alignX(t.Rect, p.Align, measure(line, p.Size, p.Bold))
			y := top + p.Top + float64(i)*p.lineStep() + p.Size
			pdf.SetTextColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
			pdf.Text(x, y, encode(line))
		}
	}
}

func pdfStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}
