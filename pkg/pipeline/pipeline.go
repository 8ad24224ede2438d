// Package pipeline provides the build → render flow shared by the CLI and
// the HTTP server.
//
// The pipeline has two stages:
//
//  1. Build: produce a frozen deck, either from a named builder under a
//     theme or from a deck JSON document.
//  2. Render: serialize the deck to one or more formats (PPTX, PDF, PNG,
//     SVG, JSON).
//
// Both stages are cached. A built deck is keyed by its name and theme hash;
// an artifact is keyed by the hash of the deck's JSON form and its render
// options, so identical decks share artifacts however they were produced.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger, decks.Build)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Deck:    "overview",
//	    Formats: []string{"pptx", "pdf"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pptx := result.Artifacts["pptx"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// Output formats.
const (
	FormatPPTX = "pptx"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultDPI is the raster resolution used when Options.DPI is zero.
const DefaultDPI = 96.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPPTX: true,
	FormatPDF:  true,
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// FormatNames lists the formats in the order they are documented.
var FormatNames = []string{FormatPPTX, FormatPDF, FormatPNG, FormatSVG, FormatJSON}

// ContentTypes maps each format to its media type.
var ContentTypes = map[string]string{
	FormatPPTX: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	FormatPDF:  "application/pdf",
	FormatPNG:  "image/png",
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
}

// Options configures one pipeline run. It supports JSON decoding for HTTP
// requests; fields that name local files are not serialized.
type Options struct {
	// Deck is the catalog name of the deck to build.
	Deck string `json:"deck,omitempty"`
	// Input is the path of a deck JSON document. It replaces Deck.
	Input string `json:"-"`
	// Document is an in-memory deck JSON document. It replaces Deck.
	Document []byte `json:"-"`

	// Theme overrides ThemePath and the default theme.
	Theme     *theme.Theme `json:"theme,omitempty"`
	ThemePath string       `json:"-"`

	Formats []string `json:"formats,omitempty"`
	// Slide is the zero-based slide rendered by the single-slide formats
	// (PNG and SVG).
	Slide      int     `json:"slide,omitempty"`
	DPI        float64 `json:"dpi,omitempty"`
	EmbedFonts bool    `json:"embed_fonts,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`

	// Creator is written into PPTX and PDF metadata.
	Creator string `json:"-"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Deck *deck.Deck

	// DeckHash is the content hash of the deck's JSON form.
	DeckHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	deck.Stats
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which stages hit the cache.
type CacheInfo struct {
	BuildHit  bool // built deck came from cache
	RenderHit bool // every artifact came from cache
}

// ValidateFormat checks that format is supported. Formats are lower-case.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForBuild checks that exactly one deck source is set.
func (o *Options) ValidateForBuild() error {
	sources := 0
	for _, set := range []bool{o.Deck != "", o.Input != "", len(o.Document) > 0} {
		if set {
			sources++
		}
	}
	switch sources {
	case 0:
		return errors.New(errors.ErrCodeInvalidInput, "deck name or input document is required")
	case 1:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "deck, input and document are mutually exclusive")
	}
	if o.Deck != "" {
		if err := errors.ValidateDeckName(o.Deck); err != nil {
			return err
		}
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForRender applies render defaults and checks the render options.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPPTX}
	}
	formats := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	o.Formats = formats
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if err := sink.ValidateDPI(o.DPI); err != nil {
		return err
	}
	if o.Slide < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "slide must be non-negative, got %d", o.Slide)
	}
	o.setLoggerDefault()
	return nil
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ResolveTheme returns the theme the deck is built with: Theme when set,
// then the file at ThemePath, then the default.
func (o *Options) ResolveTheme() (theme.Theme, error) {
	switch {
	case o.Theme != nil:
		if err := o.Theme.Validate(); err != nil {
			return theme.Theme{}, err
		}
		return *o.Theme, nil
	case o.ThemePath != "":
		return theme.Load(o.ThemePath)
	default:
		return theme.Default(), nil
	}
}

// ArtifactKeyOpts returns cache key options for a rendered format. Options
// that do not affect a format are left out so they do not split its cache
// entries.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Slide, k.DPI = o.Slide, o.DPI
	case FormatSVG:
		k.Slide, k.Fonts = o.Slide, o.EmbedFonts
	}
	return k
}
