package sink

import (
	"archive/zip"
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

func cardDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d := deck.New(deck.Widescreen, deck.Meta{Title: "Test", Author: "tests"})
	s, err := d.AddSlide()
	if err != nil {
		t.Fatal(err)
	}
	blue := deck.MustColor("389CF7")
	white := deck.RGB(255, 255, 255)
	steps := []error{
		s.FillBackground(deck.MustColor("0F172A")),
		s.DrawRoundedCard(deck.InchBox(1, 1, 4, 2), deck.MustColor("141F38"), deck.WithBorder(blue, deck.Points(1.5))),
		s.DrawText("Title ▶", deck.InchBox(1.2, 1.1, 3.6, .4), deck.TextStyle{Size: 15, Color: blue, Bold: true}),
		s.DrawOval(deck.InchBox(6, 1, 1, 1), blue),
		s.DrawRect(deck.InchBox(1.2, 1.5, 3.6, .02), blue),
		s.DrawTextBlock(deck.Lines("alpha beta gamma delta", "epsilon"), deck.InchBox(1.2, 1.6, 3.6, 1.3),
			deck.BlockStyle{TextStyle: deck.TextStyle{Size: 12, Color: white, Align: deck.AlignCenter}, LineSpacing: 1.35, Bulleted: true}),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	d.Freeze()
	return d
}

func TestRenderersDeterministic(t *testing.T) {
	d := cardDeck(t)
	tests := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"pptx", func() ([]byte, error) { return RenderPPTX(d) }},
		{"pdf", func() ([]byte, error) { return RenderPDF(d) }},
		{"png", func() ([]byte, error) { return RenderPNG(d, WithDPI(48)) }},
		{"svg", func() ([]byte, error) { return RenderSVG(d) }},
		{"json", func() ([]byte, error) { return RenderJSON(d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			second, err := tt.render()
			if err != nil {
				t.Fatalf("second render: %v", err)
			}
			if len(first) == 0 {
				t.Fatal("empty output")
			}
			if !bytes.Equal(first, second) {
				t.Error("output differs between renders")
			}
		})
	}
}

func TestRenderEmptyDeck(t *testing.T) {
	d := deck.New(deck.PageSize{}, deck.Meta{})
	if _, err := RenderPPTX(d); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderPPTX error = %v, want INVALID_INPUT", err)
	}
	if _, err := RenderPDF(d); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderPDF error = %v, want INVALID_INPUT", err)
	}
	if _, err := RenderSVG(d); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("RenderSVG error = %v, want NOT_FOUND", err)
	}
}

func TestRenderPPTXPackage(t *testing.T) {
	data, err := RenderPPTX(cardDeck(t))
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if got := zr.File[0].Name; got != contentTypes {
		t.Errorf("first entry = %q, want %q", got, contentTypes)
	}
	for _, f := range zr.File {
		if !f.Modified.Equal(Epoch) {
			t.Errorf("%s modified = %v, want %v", f.Name, f.Modified, Epoch)
		}
		if f.Name != "ppt/presentation.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		if !strings.Contains(string(body), `cx="12191695"`) {
			t.Errorf("presentation.xml does not carry the page width: %s", body)
		}
	}

	slide := zipEntry(t, data, "ppt/slides/slide1.xml")
	for _, want := range []string{
		`<a:ln w="19050">`,                 // 1.5pt border in EMU
		`<a:spcAft><a:spcPts val="420"/>`, // 12pt at 1.35 spacing, in hundredths of a point
		`name="` + BackgroundShapeName + `"`,
	} {
		if !strings.Contains(slide, want) {
			t.Errorf("slide1.xml missing %s", want)
		}
	}
}

func zipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(body)
	}
	t.Fatalf("package has no %s", name)
	return ""
}

func TestRenderPDFCoreFonts(t *testing.T) {
	out, err := RenderPDF(cardDeck(t))
	if err != nil {
		t.Fatal(err)
	}
	pdf := string(out)
	for _, want := range []string{"/BaseFont /Helvetica-Bold", "/Encoding /WinAnsiEncoding"} {
		if !strings.Contains(pdf, want) {
			t.Errorf("pdf missing %q", want)
		}
	}
	if strings.Contains(pdf, "/FontFile2") {
		t.Error("pdf embeds a TrueType font program")
	}
}

func TestPDFSubstitutes(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Title ▶", "Title >"},
		{"a → b ← c", "a -> b <- c"},
		{"├── cmd", "+-- cmd"},
		{"•  kept", "•  kept"},
	}
	for _, tt := range tests {
		if got := pdfSubstitutes.Replace(tt.in); got != tt.want {
			t.Errorf("Replace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderPNGDPI(t *testing.T) {
	d := cardDeck(t)
	tests := []struct {
		name    string
		dpi     float64
		wantErr bool
	}{
		{"small", 24, false},
		{"zero", 0, true},
		{"negative", -72, true},
		{"above max", MaxDPI + 1, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderPNG(d, WithDPI(tt.dpi))
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("RenderPNG(dpi=%g) error = %v, want INVALID_INPUT", tt.dpi, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if string(out[1:4]) != "PNG" {
				t.Error("output is not a PNG")
			}
		})
	}
}

func TestSVGContent(t *testing.T) {
	out, err := RenderSVG(cardDeck(t))
	if err != nil {
		t.Fatal(err)
	}
	svg := string(out)
	for _, want := range []string{`viewBox="0 0 960.0 540.0"`, "<ellipse", `fill="#0F172A"`, "Title ►", "•  alpha"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(svg, "@font-face") {
		t.Error("fonts embedded without WithEmbeddedFonts")
	}
}

func TestWrap(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }
	tests := []struct {
		text  string
		width float64
		want  []string
	}{
		{"a b c", 10, []string{"a b c"}},
		{"aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"longword x", 3, []string{"longword", "x"}},
		{"", 5, []string{""}},
		{"•  item one", 8, []string{"•  item", "one"}},
		{"one\ntwo", 20, []string{"one", "two"}},
		{"•  alpha", 20, []string{"•  alpha"}},
		{"a  b   c", 20, []string{"a  b   c"}},
		{"aaa   bbb", 4, []string{"aaa", "bbb"}},
		{"  indented", 20, []string{"  indented"}},
		{"trailing   ", 20, []string{"trailing"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := wrap(tt.text, tt.width, measure)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrap(%q, %g) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestSortMatches(t *testing.T) {
	in := []byte(`<Types><Override PartName="/b"/><Default Extension="xml"/><Override PartName="/a"/></Types>`)
	got := string(sortMatches(in, sortedElements[1]))
	want := `<Types><Override PartName="/a"/><Default Extension="xml"/><Override PartName="/b"/></Types>`
	if got != want {
		t.Errorf("sortMatches = %s, want %s", got, want)
	}
}
