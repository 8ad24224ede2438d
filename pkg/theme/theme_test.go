package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

func TestDefault(t *testing.T) {
	th := Default()
	if err := th.Validate(); err != nil {
		t.Fatalf("Default().Validate: %v", err)
	}
	if th.Palette.Background.Hex() != "0F172A" {
		t.Errorf("background = %s", th.Palette.Background.Hex())
	}
	if th.Fonts.Heading != "Calibri Light" {
		t.Errorf("heading font = %q", th.Fonts.Heading)
	}
}

func TestAccent(t *testing.T) {
	th := Default()
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"blue", "389CF7", true},
		{"Teal", "06B6D4", true},
		{"pink", "EC4899", true},
		{"chartreuse", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := th.Accent(tt.name)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && c.Hex() != tt.want {
				t.Errorf("Accent = %s, want %s", c.Hex(), tt.want)
			}
		})
	}
	if got := len(th.AccentNames()); got != 7 {
		t.Errorf("AccentNames len = %d, want 7", got)
	}
	if th.Cycle(0) == th.Cycle(1) {
		t.Error("neighbouring cycle colors should differ")
	}
	if th.Cycle(7) != th.Cycle(0) {
		t.Error("cycle should wrap")
	}
}

func TestNamed(t *testing.T) {
	th := Default()
	if c, err := th.Named("muted"); err != nil || c.Hex() != "999999" {
		t.Errorf("Named(muted) = %v, %v", c, err)
	}
	if c, err := th.Named("ORANGE"); err != nil || c != th.Palette.Orange {
		t.Errorf("Named(ORANGE) = %v, %v", c, err)
	}
	if _, err := th.Named("mauve"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("Named(mauve) err = %v, want INVALID_THEME", err)
	}
}

func TestDecodeOverlaysDefault(t *testing.T) {
	src := `
name = "light"

[palette]
background = "#FFFFFF"
text = "0F172A"

[sizes]
title = 32.0
`
	th, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if th.Name != "light" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Palette.Background != deck.RGB(255, 255, 255) {
		t.Errorf("background = %v", th.Palette.Background)
	}
	if th.Sizes.Title != 32 {
		t.Errorf("title size = %g", th.Sizes.Title)
	}
	if th.Palette.Blue != Default().Palette.Blue {
		t.Error("unset keys should keep default values")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "colour = \"red\""},
		{"bad color", "[palette]\nblue = \"#zzzzzz\""},
		{"zero size", "[sizes]\nbody = 0.0"},
		{"tight spacing", "line_spacing = 0.5"},
		{"syntax", "name = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("err = %v, want INVALID_THEME", err)
			}
		})
	}
}

func TestLoadAndEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")

	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(th.Bytes(), Default().Bytes()) {
		t.Error("encoded theme should load back unchanged")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v, want FILE_NOT_FOUND", err)
	}
}
