package pipeline

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/deck/compose"
	"github.com/matzehuels/stackdeck/pkg/errors"
	deckio "github.com/matzehuels/stackdeck/pkg/io"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pptx", false},
		{"pdf", false},
		{"png", false},
		{"svg", false},
		{"json", false},
		{"invalid", true},
		{"PPTX", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"pptx", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"pptx", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateForBuild(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr errors.Code
	}{
		{"deck", Options{Deck: "overview"}, ""},
		{"input", Options{Input: "deck.json"}, ""},
		{"document", Options{Document: []byte("{}")}, ""},
		{"none", Options{}, errors.ErrCodeInvalidInput},
		{"two sources", Options{Deck: "overview", Input: "deck.json"}, errors.ErrCodeInvalidInput},
		{"bad name", Options{Deck: "Over View"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForBuild()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateForBuild() = %v", err)
				}
				return
			}
			if errors.GetCode(err) != tt.wantErr {
				t.Errorf("ValidateForBuild() = %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForRenderDefaults(t *testing.T) {
	formats := []string{" PNG ", "Json"}
	opts := Options{Formats: formats}
	if err := opts.ValidateForRender(); err != nil {
		t.Fatalf("ValidateForRender() = %v", err)
	}
	if opts.Formats[0] != FormatPNG || opts.Formats[1] != FormatJSON {
		t.Errorf("Formats = %v, want normalized", opts.Formats)
	}
	if formats[0] != " PNG " {
		t.Error("caller's format slice was modified")
	}
	if opts.DPI != DefaultDPI {
		t.Errorf("DPI = %v, want %v", opts.DPI, DefaultDPI)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}

	empty := Options{}
	if err := empty.ValidateForRender(); err != nil {
		t.Fatal(err)
	}
	if len(empty.Formats) != 1 || empty.Formats[0] != FormatPPTX {
		t.Errorf("default formats = %v, want [pptx]", empty.Formats)
	}

	for _, bad := range []Options{{DPI: -1}, {Slide: -1}, {Formats: []string{"gif"}}} {
		if err := bad.ValidateForRender(); err == nil {
			t.Errorf("ValidateForRender(%+v) should fail", bad)
		}
	}
}

func TestValidateForRenderDPI(t *testing.T) {
	tests := []struct {
		name    string
		dpi     float64
		wantErr bool
	}{
		{"default", 0, false},
		{"low", 24, false},
		{"max", 600, false},
		{"negative", -1, true},
		{"above max", 601, true},
		{"huge", 1e12, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Formats: []string{FormatPNG}, DPI: tt.dpi}
			err := opts.ValidateForRender()
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ValidateForRender(dpi=%g) = %v, want INVALID_INPUT", tt.dpi, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateForRender(dpi=%g) = %v", tt.dpi, err)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Slide: 2, DPI: 150, EmbedFonts: true}
	tests := []struct {
		format string
		want   cache.ArtifactKeyOpts
	}{
		{FormatPPTX, cache.ArtifactKeyOpts{Format: FormatPPTX}},
		{FormatPDF, cache.ArtifactKeyOpts{Format: FormatPDF}},
		{FormatPNG, cache.ArtifactKeyOpts{Format: FormatPNG, Slide: 2, DPI: 150}},
		{FormatSVG, cache.ArtifactKeyOpts{Format: FormatSVG, Slide: 2, Fonts: true}},
	}
	for _, tt := range tests {
		if got := opts.ArtifactKeyOpts(tt.format); got != tt.want {
			t.Errorf("ArtifactKeyOpts(%s) = %+v, want %+v", tt.format, got, tt.want)
		}
	}
}

func TestResolveTheme(t *testing.T) {
	opts := Options{}
	th, err := opts.ResolveTheme()
	if err != nil || th.Name != theme.Default().Name {
		t.Errorf("ResolveTheme() = %q, %v, want default", th.Name, err)
	}

	bad := theme.Default()
	bad.Sizes.Body = -1
	opts.Theme = &bad
	if _, err := opts.ResolveTheme(); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("ResolveTheme(bad) = %v, want INVALID_THEME", err)
	}
}

// oneCard builds a single slide holding one card.
func oneCard(calls *int) DeckBuilder {
	return func(name string, th theme.Theme) (*deck.Deck, error) {
		*calls++
		d := deck.New(deck.Widescreen, deck.Meta{Title: name})
		s, err := d.AddSlide()
		if err != nil {
			return nil, err
		}
		err = compose.Card(s, th, deck.Box(0, 0, deck.Points(300), deck.Points(200)), compose.CardSpec{
			Title:  "Card",
			Body:   deck.Lines("a", "b"),
			Accent: th.Palette.Blue,
		})
		return d, err
	}
}

func newTestRunner(t *testing.T, build DeckBuilder) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil, build)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRunnerCaches(t *testing.T) {
	ctx := context.Background()
	calls := 0
	r := newTestRunner(t, oneCard(&calls))
	opts := Options{Deck: "demo", Formats: []string{FormatJSON, FormatSVG}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.BuildHit || first.CacheInfo.RenderHit {
		t.Errorf("first run hit cache: %+v", first.CacheInfo)
	}
	if first.Stats.Slides != 1 || first.Stats.Elements != 4 {
		t.Errorf("stats = %+v, want 1 slide with 4 elements", first.Stats.Stats)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.CacheInfo.BuildHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run missed cache: %+v", second.CacheInfo)
	}
	if calls != 1 {
		t.Errorf("builder called %d times, want 1", calls)
	}
	if second.DeckHash != first.DeckHash {
		t.Error("deck hash changed between runs")
	}
	for _, f := range opts.Formats {
		if !bytes.Equal(first.Artifacts[f], second.Artifacts[f]) {
			t.Errorf("%s artifact differs between runs", f)
		}
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if third.CacheInfo.BuildHit || calls != 2 {
		t.Errorf("refresh reused cache: hit=%v calls=%d", third.CacheInfo.BuildHit, calls)
	}
}

func TestRunnerThemeSplitsCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	r := newTestRunner(t, oneCard(&calls))

	if _, err := r.Execute(ctx, Options{Deck: "demo", Formats: []string{FormatJSON}}); err != nil {
		t.Fatal(err)
	}
	th := theme.Default()
	th.Palette.Background = deck.MustColor("FFFFFF")
	res, err := r.Execute(ctx, Options{Deck: "demo", Theme: &th, Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.BuildHit || calls != 2 {
		t.Errorf("different theme reused cached deck: hit=%v calls=%d", res.CacheInfo.BuildHit, calls)
	}
}

func TestRunnerDocument(t *testing.T) {
	ctx := context.Background()
	calls := 0
	d, err := oneCard(&calls)("doc", theme.Default())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := deckio.WriteJSON(d, &buf); err != nil {
		t.Fatal(err)
	}

	r := newTestRunner(t, nil)
	res, err := r.Execute(ctx, Options{Document: buf.Bytes(), Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.CacheInfo.BuildHit {
		t.Error("document build reported a cache hit")
	}
	if !bytes.Equal(res.Artifacts[FormatJSON], buf.Bytes()) {
		t.Error("JSON artifact does not match the input document")
	}
	if res.Deck.Len() != 1 || res.Deck.Slides()[0].Len() != 4 {
		t.Errorf("document deck = %+v", res.Deck.Stats())
	}
}

func TestRunnerErrors(t *testing.T) {
	ctx := context.Background()

	r := newTestRunner(t, nil)
	if _, err := r.Execute(ctx, Options{Deck: "demo"}); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Execute without builder = %v, want INTERNAL_ERROR", err)
	}
	if _, err := r.Execute(ctx, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute without source = %v, want INVALID_INPUT", err)
	}
	if _, err := r.Render(ctx, nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Render(nil) = %v, want INVALID_INPUT", err)
	}

	calls := 0
	r = newTestRunner(t, oneCard(&calls))
	_, err := r.Execute(ctx, Options{Deck: "demo", Formats: []string{FormatPNG}, Slide: 5})
	if err == nil {
		t.Error("rendering a missing slide should fail")
	}
}

func TestRenderUncached(t *testing.T) {
	calls := 0
	d, err := oneCard(&calls)("demo", theme.Default())
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(context.Background(), d, Options{Formats: []string{FormatJSON, FormatSVG}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out[FormatJSON]) == 0 || !bytes.HasPrefix(out[FormatSVG], []byte("<svg")) {
		t.Errorf("unexpected artifacts: json=%d bytes, svg prefix %q", len(out[FormatJSON]), out[FormatSVG][:min(10, len(out[FormatSVG]))])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, d, Options{}); err == nil {
		t.Error("Render with canceled context should fail")
	}
}
