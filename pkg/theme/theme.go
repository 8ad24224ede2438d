// Package theme holds the palette, typefaces and type scale that slide
// builders draw with.
//
// A [Theme] is a plain value passed explicitly to every composite in
// [github.com/matzehuels/stackdeck/pkg/deck/compose]; there is no global
// palette. [Default] returns the dark navy theme of the bundled decks, and
// [Load] overlays a TOML file on top of it:
//
//	name = "light"
//
//	[palette]
//	background = "#FFFFFF"
//	text = "#0F172A"
//
//	[sizes]
//	title = 32.0
package theme

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Palette is the set of named colors a theme provides.
type Palette struct {
	Background deck.Color `toml:"background" json:"background"`
	Section    deck.Color `toml:"section" json:"section"`
	Card       deck.Color `toml:"card" json:"card"`
	Text       deck.Color `toml:"text" json:"text"`
	Light      deck.Color `toml:"light" json:"light"`
	Muted      deck.Color `toml:"muted" json:"muted"`

	Blue   deck.Color `toml:"blue" json:"blue"`
	Teal   deck.Color `toml:"teal" json:"teal"`
	Green  deck.Color `toml:"green" json:"green"`
	Orange deck.Color `toml:"orange" json:"orange"`
	Red    deck.Color `toml:"red" json:"red"`
	Purple deck.Color `toml:"purple" json:"purple"`
	Pink   deck.Color `toml:"pink" json:"pink"`
}

// Fonts names the typefaces used for body copy, headings and code.
type Fonts struct {
	Body    string `toml:"body" json:"body"`
	Heading string `toml:"heading" json:"heading"`
	Mono    string `toml:"mono" json:"mono"`
}

// Sizes is the type scale in points.
type Sizes struct {
	Title           float64 `toml:"title" json:"title"`
	Subtitle        float64 `toml:"subtitle" json:"subtitle"`
	SectionNumber   float64 `toml:"section_number" json:"section_number"`
	SectionTitle    float64 `toml:"section_title" json:"section_title"`
	SectionSubtitle float64 `toml:"section_subtitle" json:"section_subtitle"`
	CardTitle       float64 `toml:"card_title" json:"card_title"`
	CardBody        float64 `toml:"card_body" json:"card_body"`
	Body            float64 `toml:"body" json:"body"`
	Metric          float64 `toml:"metric" json:"metric"`
}

// Theme is an immutable styling value.
type Theme struct {
	Name        string  `toml:"name" json:"name"`
	Palette     Palette `toml:"palette" json:"palette"`
	Fonts       Fonts   `toml:"fonts" json:"fonts"`
	Sizes       Sizes   `toml:"sizes" json:"sizes"`
	LineSpacing float64 `toml:"line_spacing" json:"line_spacing"`
}

// Default returns the dark navy theme.
func Default() Theme {
	return Theme{
		Name: "navy",
		Palette: Palette{
			Background: deck.MustColor("0F172A"),
			Section:    deck.MustColor("141F38"),
			Card:       deck.MustColor("1A2538"),
			Text:       deck.MustColor("FFFFFF"),
			Light:      deck.MustColor("CCCCCC"),
			Muted:      deck.MustColor("999999"),
			Blue:       deck.MustColor("389CF7"),
			Teal:       deck.MustColor("06B6D4"),
			Green:      deck.MustColor("22C55E"),
			Orange:     deck.MustColor("F59E0B"),
			Red:        deck.MustColor("EF4444"),
			Purple:     deck.MustColor("A78BFA"),
			Pink:       deck.MustColor("EC4899"),
		},
		Fonts: Fonts{Body: "Calibri", Heading: "Calibri Light", Mono: "Consolas"},
		Sizes: Sizes{
			Title:           30,
			Subtitle:        16,
			SectionNumber:   48,
			SectionTitle:    36,
			SectionSubtitle: 18,
			CardTitle:       15,
			CardBody:        12,
			Body:            14,
			Metric:          42,
		},
		LineSpacing: 1.35,
	}
}

// Accent looks up an accent color by name ("blue", "teal", ...).
func (t Theme) Accent(name string) (deck.Color, bool) {
	c, ok := t.accents()[strings.ToLower(name)]
	return c, ok
}

// Named looks up any palette color by name: the accents plus "background",
// "section", "card", "text", "light" and "muted".
func (t Theme) Named(name string) (deck.Color, error) {
	if c, ok := t.Accent(name); ok {
		return c, nil
	}
	p := t.Palette
	switch strings.ToLower(name) {
	case "background":
		return p.Background, nil
	case "section":
		return p.Section, nil
	case "card":
		return p.Card, nil
	case "text":
		return p.Text, nil
	case "light":
		return p.Light, nil
	case "muted":
		return p.Muted, nil
	}
	return deck.Color{}, errors.New(errors.ErrCodeInvalidTheme, "unknown color name %q", name)
}

// AccentNames returns the accent names in a stable order.
func (t Theme) AccentNames() []string {
	names := make([]string, 0, 7)
	for n := range t.accents() {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Cycle returns the accent for the i-th item of a grid so neighbours differ.
func (t Theme) Cycle(i int) deck.Color {
	p := t.Palette
	ring := []deck.Color{p.Blue, p.Teal, p.Green, p.Orange, p.Purple, p.Pink, p.Red}
	if i < 0 {
		i = -i
	}
	return ring[i%len(ring)]
}

func (t Theme) accents() map[string]deck.Color {
	p := t.Palette
	return map[string]deck.Color{
		"blue":   p.Blue,
		"teal":   p.Teal,
		"green":  p.Green,
		"orange": p.Orange,
		"red":    p.Red,
		"purple": p.Purple,
		"pink":   p.Pink,
	}
}

// Validate checks that every size is positive and every font is named.
func (t Theme) Validate() error {
	sizes := map[string]float64{
		"title":            t.Sizes.Title,
		"subtitle":         t.Sizes.Subtitle,
		"section_number":   t.Sizes.SectionNumber,
		"section_title":    t.Sizes.SectionTitle,
		"section_subtitle": t.Sizes.SectionSubtitle,
		"card_title":       t.Sizes.CardTitle,
		"card_body":        t.Sizes.CardBody,
		"body":             t.Sizes.Body,
		"metric":           t.Sizes.Metric,
	}
	keys := make([]string, 0, len(sizes))
	for k := range sizes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if sizes[k] <= 0 {
			return errors.New(errors.ErrCodeInvalidTheme, "sizes.%s must be positive, got %g", k, sizes[k])
		}
	}
	if t.Fonts.Body == "" || t.Fonts.Heading == "" || t.Fonts.Mono == "" {
		return errors.New(errors.ErrCodeInvalidTheme, "fonts.body, fonts.heading and fonts.mono are required")
	}
	if t.LineSpacing < 1 {
		return errors.New(errors.ErrCodeInvalidTheme, "line_spacing must be at least 1.0, got %g", t.LineSpacing)
	}
	return nil
}

// Decode reads a TOML theme from r, overlaying it on Default. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Decode(r io.Reader) (Theme, error) {
	t := Default()
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme key %q", undecoded[0].String())
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Load reads a TOML theme file.
func Load(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
		}
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "open theme %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes t as TOML. The output is stable for equal themes, which
// makes it usable as a cache fingerprint.
func (t Theme) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(t)
}

// Bytes returns the TOML encoding of t.
func (t Theme) Bytes() []byte {
	var buf bytes.Buffer
	_ = t.Encode(&buf)
	return buf.Bytes()
}
