package deck

import (
	"testing"

	"github.com/matzehuels/stackdeck/pkg/errors"
)

var (
	white = MustColor("FFFFFF")
	blue  = MustColor("389CF7")
)

func newSlide(t *testing.T) (*Deck, *Slide) {
	t.Helper()
	d := New(PageSize{}, Meta{Title: "test"})
	s, err := d.AddSlide()
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	return d, s
}

func TestNewDefaultsToWidescreen(t *testing.T) {
	d := New(PageSize{}, Meta{})
	if d.Page != Widescreen {
		t.Errorf("Page = %+v, want %+v", d.Page, Widescreen)
	}
	if d.Page.Width != 12191695 {
		t.Errorf("Width = %d EMU, want 12191695", d.Page.Width)
	}
}

func TestShapePrimitivesRejectEmptyGeometry(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
	}{
		{"zero width", Box(Inches(1), Inches(1), 0, Inches(1))},
		{"zero height", Box(Inches(1), Inches(1), Inches(1), 0)},
		{"negative width", Box(0, 0, -1, Inches(1))},
		{"negative left", Box(-1, 0, Inches(1), Inches(1))},
	}
	draws := map[string]func(*Slide, Rect) error{
		"rect":  func(s *Slide, r Rect) error { return s.DrawRect(r, blue) },
		"card":  func(s *Slide, r Rect) error { return s.DrawRoundedCard(r, blue) },
		"oval":  func(s *Slide, r Rect) error { return s.DrawOval(r, blue) },
		"text":  func(s *Slide, r Rect) error { return s.DrawText("x", r, TextStyle{Size: 12}) },
		"block": func(s *Slide, r Rect) error { return s.DrawTextBlock(Lines("a"), r, BlockStyle{TextStyle: TextStyle{Size: 12}}) },
	}

	for _, tt := range tests {
		for name, draw := range draws {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				_, s := newSlide(t)
				err := draw(s, tt.rect)
				if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
					t.Fatalf("err = %v, want INVALID_GEOMETRY", err)
				}
				if s.Len() != 0 {
					t.Errorf("Len = %d, want 0 after failed draw", s.Len())
				}
			})
		}
	}
}

func TestDrawRecordsInOrder(t *testing.T) {
	_, s := newSlide(t)
	r := InchBox(1, 1, 2, 1)

	if err := s.DrawRect(r, blue); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawRoundedCard(r, blue, WithBorder(white, 0)); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawOval(r, white); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawText("hi", r, TextStyle{Size: 12, Color: white}); err != nil {
		t.Fatal(err)
	}

	els := s.Elements()
	if len(els) != 4 {
		t.Fatalf("len = %d, want 4", len(els))
	}
	wantKinds := []ShapeKind{KindRect, KindRoundRect, KindOval}
	for i, k := range wantKinds {
		sh, ok := els[i].(*Shape)
		if !ok {
			t.Fatalf("element %d is %T, want *Shape", i, els[i])
		}
		if sh.Kind != k {
			t.Errorf("element %d kind = %v, want %v", i, sh.Kind, k)
		}
	}
	card := els[1].(*Shape)
	if card.Border == nil || card.Border.Width != DefaultBorderWidth {
		t.Errorf("border = %+v, want default width", card.Border)
	}
	if tb, ok := els[3].(*TextBox); !ok || tb.Text() != "hi" {
		t.Errorf("element 3 = %#v, want text box \"hi\"", els[3])
	}
}

func TestFillBackgroundLastWins(t *testing.T) {
	_, s := newSlide(t)
	if _, ok := s.Background(); ok {
		t.Fatal("new slide should have no background")
	}
	_ = s.FillBackground(white)
	_ = s.FillBackground(blue)
	bg, ok := s.Background()
	if !ok || bg != blue {
		t.Errorf("Background = %v, %v; want %v", bg, ok, blue)
	}
	if s.Len() != 0 {
		t.Errorf("background should not add elements, Len = %d", s.Len())
	}
}

func TestDrawTextBlock(t *testing.T) {
	lines := []Line{
		Plain("first"),
		Styled("second", true, blue),
		Plain(""),
	}

	t.Run("bulleted", func(t *testing.T) {
		_, s := newSlide(t)
		style := BlockStyle{TextStyle: TextStyle{Size: 12, Color: white}, Bulleted: true}
		if err := s.DrawTextBlock(lines, InchBox(0, 0, 4, 2), style); err != nil {
			t.Fatal(err)
		}
		tb := s.Elements()[0].(*TextBox)
		want := []string{BulletGlyph + "first", BulletGlyph + "second", BulletGlyph}
		if len(tb.Runs) != len(want) {
			t.Fatalf("runs = %d, want %d", len(tb.Runs), len(want))
		}
		for i, w := range want {
			if tb.Runs[i].Text != w {
				t.Errorf("run %d = %q, want %q", i, tb.Runs[i].Text, w)
			}
		}
		if tb.LineSpacing != DefaultLineSpacing {
			t.Errorf("LineSpacing = %g, want default %g", tb.LineSpacing, DefaultLineSpacing)
		}
	})

	t.Run("styled overrides block defaults", func(t *testing.T) {
		_, s := newSlide(t)
		style := BlockStyle{TextStyle: TextStyle{Size: 14, Color: white}, LineSpacing: 1.35}
		if err := s.DrawTextBlock(lines, InchBox(0, 0, 4, 2), style); err != nil {
			t.Fatal(err)
		}
		runs := s.Elements()[0].(*TextBox).Runs
		if runs[0].Color != white || runs[0].Bold {
			t.Errorf("plain run = %+v, want block color and regular weight", runs[0])
		}
		if runs[1].Color != blue || !runs[1].Bold {
			t.Errorf("styled run = %+v, want blue bold", runs[1])
		}
		if runs[1].Size != 14 {
			t.Errorf("styled run size = %g, want block size 14", runs[1].Size)
		}
	})

	t.Run("spacing below one", func(t *testing.T) {
		_, s := newSlide(t)
		style := BlockStyle{TextStyle: TextStyle{Size: 12}, LineSpacing: 0.8}
		err := s.DrawTextBlock(lines, InchBox(0, 0, 4, 2), style)
		if !errors.Is(err, errors.ErrCodeInvalidText) {
			t.Errorf("err = %v, want INVALID_TEXT", err)
		}
	})

	t.Run("zero font size", func(t *testing.T) {
		_, s := newSlide(t)
		err := s.DrawTextBlock(lines, InchBox(0, 0, 4, 2), BlockStyle{})
		if !errors.Is(err, errors.ErrCodeInvalidText) {
			t.Errorf("err = %v, want INVALID_TEXT", err)
		}
	})

	t.Run("nil line", func(t *testing.T) {
		_, s := newSlide(t)
		style := BlockStyle{TextStyle: TextStyle{Size: 12, Color: white}}
		err := s.DrawTextBlock([]Line{Plain("a"), nil, Plain("b")}, InchBox(0, 0, 4, 2), style)
		if !errors.Is(err, errors.ErrCodeInvalidText) {
			t.Errorf("err = %v, want INVALID_TEXT", err)
		}
		if s.Len() != 0 {
			t.Errorf("rejected block was recorded, Len = %d", s.Len())
		}
	})
}

func TestResolveLines(t *testing.T) {
	style := BlockStyle{TextStyle: TextStyle{Size: 12, Color: white}, Bulleted: true}
	tests := []struct {
		name    string
		lines   []Line
		want    []string
		wantErr bool
	}{
		{"empty", nil, []string{}, false},
		{"bulleted", Lines("a", "b"), []string{BulletGlyph + "a", BulletGlyph + "b"}, false},
		{"styled keeps bullet", []Line{Styled("s", true, blue)}, []string{BulletGlyph + "s"}, false},
		{"nil entry", []Line{Plain("a"), nil}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := ResolveLines(tt.lines, style)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidText) {
					t.Errorf("err = %v, want INVALID_TEXT", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("runs = %d, want %d", len(runs), len(tt.want))
			}
			for i, w := range tt.want {
				if runs[i].Text != w {
					t.Errorf("run %d = %q, want %q", i, runs[i].Text, w)
				}
			}
		})
	}
}

func TestFreeze(t *testing.T) {
	d, first := newSlide(t)
	if err := first.DrawRect(InchBox(0, 0, 1, 1), blue); err != nil {
		t.Fatal(err)
	}

	second, err := d.AddSlide()
	if err != nil {
		t.Fatal(err)
	}
	if !first.Frozen() {
		t.Error("AddSlide should freeze the previous slide")
	}
	if err := first.DrawRect(InchBox(0, 0, 1, 1), blue); !errors.Is(err, errors.ErrCodeFrozen) {
		t.Errorf("draw on frozen slide: err = %v, want FROZEN", err)
	}
	if err := first.FillBackground(white); !errors.Is(err, errors.ErrCodeFrozen) {
		t.Errorf("background on frozen slide: err = %v, want FROZEN", err)
	}

	d.Freeze()
	if !second.Frozen() {
		t.Error("Deck.Freeze should freeze every slide")
	}
	if _, err := d.AddSlide(); !errors.Is(err, errors.ErrCodeFrozen) {
		t.Errorf("AddSlide on frozen deck: err = %v, want FROZEN", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestStats(t *testing.T) {
	d, s := newSlide(t)
	_ = s.DrawRect(InchBox(0, 0, 1, 1), blue)
	_ = s.DrawOval(InchBox(0, 0, 1, 1), blue)
	_ = s.DrawText("x", InchBox(0, 0, 1, 1), TextStyle{Size: 10})
	if _, err := d.AddSlide(); err != nil {
		t.Fatal(err)
	}

	got := d.Stats()
	want := Stats{Slides: 2, Elements: 3, Shapes: 2, TextBoxes: 1}
	if got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
