package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackdeck/internal/decks"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
	"github.com/matzehuels/stackdeck/pkg/render/inspect"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty leaves default", "", nil},
		{"single format", "pdf", []string{"pdf"}},
		{"multiple formats", "pptx, PDF,png", []string{"pptx", "pdf", "png"}},
		{"stray commas", ",svg,,", []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, base, format string
		count                int
		want                 string
	}{
		{"", "overview", "pptx", 1, "overview.pptx"},
		{"out", "overview", "pdf", 2, filepath.Join("out", "overview.pdf")},
		{"deck.pptx", "overview", "pptx", 1, "deck.pptx"},
		{"deck.pptx", "overview", "pdf", 2, filepath.Join("deck.pptx", "overview.pdf")},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.base, tt.format, tt.count); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %d) = %q, want %q", tt.output, tt.base, tt.format, tt.count, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := map[string]string{
		"decks/overview.json": "overview",
		"overview.PPTX":       "overview",
		"notes.txt":           "notes.txt",
	}
	for in, want := range tests {
		if got := basePath(in); got != want {
			t.Errorf("basePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderFlagsApply(t *testing.T) {
	f := renderFlags{formats: "svg", slide: 3, dpi: 144}
	var opts pipeline.Options
	if err := f.apply(&opts); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if opts.Slide != 2 || opts.DPI != 144 || !slices.Equal(opts.Formats, []string{"svg"}) {
		t.Errorf("opts = %+v", opts)
	}

	for _, bad := range []renderFlags{{slide: 0, dpi: 96}, {slide: 1, dpi: 96, formats: "gif"}} {
		if err := bad.apply(&pipeline.Options{}); err == nil {
			t.Errorf("apply(%+v) should fail", bad)
		}
	}
}

func TestHumanBytes(t *testing.T) {
	tests := map[int64]string{
		0:       "0 B",
		1023:    "1023 B",
		1024:    "1.0 KiB",
		1536:    "1.5 KiB",
		5 << 20: "5.0 MiB",
	}
	for n, want := range tests {
		if got := humanBytes(n); got != want {
			t.Errorf("humanBytes(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestDeckListModel(t *testing.T) {
	var m tea.Model = NewDeckListModel(decks.All())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamps at the end
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	got := m.(DeckListModel)
	last := decks.Names()[len(decks.Names())-1]
	if got.Selected == nil || got.Selected.Name != last {
		t.Errorf("selected = %+v, want %s", got.Selected, last)
	}
	if view := got.View(); !bytes.Contains([]byte(view), []byte(last)) {
		t.Errorf("view does not list %s", last)
	}
}

func TestBuildCommandWritesFiles(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := t.TempDir()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"build", "agentic", "-f", "pptx,json", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}

	rep, err := inspect.File(filepath.Join(out, "agentic.pptx"))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(rep.Slides) != 12 {
		t.Errorf("slides = %d, want 12", len(rep.Slides))
	}

	// The JSON artifact renders again through the render command.
	doc := filepath.Join(out, "agentic.json")
	if _, err := os.Stat(doc); err != nil {
		t.Fatal(err)
	}
	again := t.TempDir()
	root = c.RootCommand()
	root.SetArgs([]string{"render", doc, "-f", "svg", "--slide", "2", "-o", filepath.Join(again, "slide2.svg")})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(again, "slide2.svg")); err != nil {
		t.Errorf("svg not written: %v", err)
	}
}

func TestBuildCommandUnknownDeck(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"build", "missing"})
	if err := root.Execute(); err == nil {
		t.Error("unknown deck should fail")
	}
}

func TestWriteCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeCompletion(root, shell, &buf); err != nil {
				t.Fatalf("writeCompletion: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(appName)) {
				t.Errorf("%s script does not mention %s", shell, appName)
			}
		})
	}
}
