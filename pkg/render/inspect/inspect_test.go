package inspect

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/deck/compose"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

func oneCardDeck(t *testing.T) *deck.Deck {
	t.Helper()
	th := theme.Default()
	d := deck.New(deck.Widescreen, deck.Meta{Title: "One card"})
	s, err := d.AddSlide()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.FillBackground(th.Palette.Background); err != nil {
		t.Fatal(err)
	}
	r := deck.Box(0, 0, deck.Points(300), deck.Points(200))
	if err := compose.Card(s, th, r, compose.CardSpec{
		Title:  "X",
		Body:   deck.Lines("a", "b"),
		Accent: th.Palette.Blue,
	}); err != nil {
		t.Fatal(err)
	}
	d.Freeze()
	return d
}

func TestCardReadsBack(t *testing.T) {
	d := oneCardDeck(t)
	data, err := sink.RenderPPTX(d)
	if err != nil {
		t.Fatalf("RenderPPTX: %v", err)
	}
	rep, err := Bytes(data)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	if len(rep.Slides) != 1 {
		t.Fatalf("slides = %d, want 1", len(rep.Slides))
	}
	if !rep.Slides[0].Background {
		t.Error("background shape not found")
	}
	if got := rep.ShapeCount(); got != 4 {
		t.Fatalf("shapes = %d, want 4", got)
	}

	title, rule, body := compose.CompactCard.Regions(deck.Box(0, 0, deck.Points(300), deck.Points(200)))
	want := []deck.Rect{deck.Box(0, 0, deck.Points(300), deck.Points(200)), title, rule, body}
	for i, sh := range rep.Slides[0].Shapes {
		got := deck.Box(deck.EMU(sh.Left), deck.EMU(sh.Top), deck.EMU(sh.Width), deck.EMU(sh.Height))
		if got != want[i] {
			t.Errorf("shape %d at %+v, want %+v", i, got, want[i])
		}
	}

	texts := rep.Texts()
	if len(texts) != 2 || texts[0] != "X" || texts[1] != "•  a\n•  b" {
		t.Errorf("texts = %q", texts)
	}

	th := theme.Default()
	kinds := []struct{ kind, geometry, fill string }{
		{KindShape, "roundRect", th.Palette.Section.String()},
		{KindText, "rect", ""},
		{KindShape, "rect", th.Palette.Blue.String()},
		{KindText, "rect", ""},
	}
	for i, want := range kinds {
		sh := rep.Slides[0].Shapes[i]
		if sh.Kind != want.kind || sh.Geometry != want.geometry || sh.Fill != want.fill {
			t.Errorf("shape %d = %s/%s/%s, want %s/%s/%s", i, sh.Kind, sh.Geometry, sh.Fill, want.kind, want.geometry, want.fill)
		}
	}
}

func TestRebuildMatchesDeck(t *testing.T) {
	d := oneCardDeck(t)
	data, err := sink.RenderPPTX(d)
	if err != nil {
		t.Fatal(err)
	}
	pkg, err := readPackage(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := pkg.rebuild(0)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if got.Page != d.Page {
		t.Errorf("page = %+v, want %+v", got.Page, d.Page)
	}
	if got.Stats() != d.Stats() {
		t.Errorf("stats = %+v, want %+v", got.Stats(), d.Stats())
	}
	wantBG, _ := d.Slides()[0].Background()
	if bg, ok := got.Slides()[0].Background(); !ok || bg != wantBG {
		t.Errorf("background = %v (%v), want %v", bg, ok, wantBG)
	}

	orig, rebuilt := d.Slides()[0].Elements(), got.Slides()[0].Elements()
	panel, ok := rebuilt[0].(*deck.Shape)
	if !ok {
		t.Fatalf("element 0 is %T, want *deck.Shape", rebuilt[0])
	}
	if want := orig[0].(*deck.Shape); panel.Kind != want.Kind || panel.Fill != want.Fill || panel.Border == nil || *panel.Border != *want.Border {
		t.Errorf("panel = %+v, want %+v", panel, want)
	}
	body, ok := rebuilt[3].(*deck.TextBox)
	if !ok {
		t.Fatalf("element 3 is %T, want *deck.TextBox", rebuilt[3])
	}
	want := orig[3].(*deck.TextBox)
	if body.Text() != want.Text() {
		t.Errorf("body text = %q, want %q", body.Text(), want.Text())
	}
	if body.Runs[0].Size != want.Runs[0].Size || body.Runs[0].Color != want.Runs[0].Color {
		t.Errorf("body run = %+v, want %+v", body.Runs[0], want.Runs[0])
	}
	if diff := body.LineSpacing - want.LineSpacing; diff > 0.01 || diff < -0.01 {
		t.Errorf("line spacing = %g, want %g", body.LineSpacing, want.LineSpacing)
	}
}

func TestFileErrors(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "missing.pptx")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.pptx")
	if err := os.WriteFile(bad, []byte("not a zip"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := File(bad); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("corrupt file error = %v, want INVALID_FORMAT", err)
	}
	if _, err := Bytes(nil); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("empty input error = %v, want INVALID_FORMAT", err)
	}
}

func TestThumbnail(t *testing.T) {
	data, err := sink.RenderPPTX(oneCardDeck(t))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	data, err = Thumbnail(path, 0, 320)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("thumbnail is not a PNG: %v", err)
	}
	b := img.Bounds()
	if w := b.Dx(); w < 320 || w > 321 {
		t.Errorf("width = %d, want 320", w)
	}
	// The card sits in the top-left corner; the opposite corner shows the background.
	bg := theme.Default().Palette.Background
	r, g, bl, _ := img.At(b.Max.X-2, b.Max.Y-2).RGBA()
	if uint8(r>>8) != bg.R || uint8(g>>8) != bg.G || uint8(bl>>8) != bg.B {
		t.Errorf("corner pixel = %02X%02X%02X, want %s", r>>8, g>>8, bl>>8, bg)
	}

	tests := []struct {
		name  string
		slide int
		width int
		code  errors.Code
	}{
		{"slide out of range", 3, 320, errors.ErrCodeNotFound},
		{"negative slide", -1, 320, errors.ErrCodeNotFound},
		{"negative width", 0, -5, errors.ErrCodeInvalidInput},
		{"width beyond max dpi", 0, 100000, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Thumbnail(path, tt.slide, tt.width); !errors.Is(err, tt.code) {
				t.Errorf("Thumbnail(%d, %d) error = %v, want %s", tt.slide, tt.width, err, tt.code)
			}
		})
	}
}
