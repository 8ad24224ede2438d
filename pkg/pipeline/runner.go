package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	deckio "github.com/matzehuels/stackdeck/pkg/io"
	"github.com/matzehuels/stackdeck/pkg/observability"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// DeckBuilder builds a named deck under a theme.
type DeckBuilder func(name string, th theme.Theme) (*deck.Deck, error)

// Runner executes the pipeline with caching. Both CLI and server use it.
//
// A Runner holds no per-run state, so one Runner may serve concurrent
// Execute calls with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Build  DeckBuilder
}

// NewRunner creates a runner. A nil keyer selects the DefaultKeyer, a nil
// cache disables caching and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, build DeckBuilder) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Build:  build,
	}
}

// Execute runs the complete build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	buildStart := time.Now()
	d, data, buildHit, err := r.BuildWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Deck = d
	result.DeckHash = cache.Hash(data)
	result.Stats.Stats = d.Stats()
	result.Stats.BuildTime = time.Since(buildStart)
	result.CacheInfo.BuildHit = buildHit

	opts.Logger.Info("built deck",
		"title", d.Meta.Title,
		"slides", result.Stats.Slides,
		"elements", result.Stats.Elements,
		"cached", buildHit,
		"duration", result.Stats.BuildTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.renderData(ctx, d, data, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo produces the deck and its JSON form, and reports
// whether the deck came from the cache. Decks read from a document are
// never cached: the document already is the cached form.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, opts Options) (*deck.Deck, []byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForBuild(); err != nil {
		return nil, nil, false, err
	}

	if opts.Input != "" || len(opts.Document) > 0 {
		d, data, err := readDocument(opts)
		return d, data, false, err
	}

	if r.Build == nil {
		return nil, nil, false, errors.New(errors.ErrCodeInternal, "runner has no deck builder")
	}
	th, err := opts.ResolveTheme()
	if err != nil {
		return nil, nil, false, err
	}
	key := r.Keyer.DeckKey(opts.Deck, cache.DeckKeyOpts{ThemeHash: cache.Hash(th.Bytes())})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if d, err := deckio.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "deck")
				d.Freeze()
				return d, data, true, nil
			}
			opts.Logger.Warn("discarding unreadable cached deck", "deck", opts.Deck)
		} else if err != nil {
			opts.Logger.Warn("deck cache lookup failed", "deck", opts.Deck, "error", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "deck")

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Deck)
	start := time.Now()
	d, err := r.Build(opts.Deck, th)
	slides := 0
	if d != nil {
		slides = d.Len()
	}
	hooks.OnBuildComplete(ctx, opts.Deck, slides, time.Since(start), err)
	if err != nil {
		return nil, nil, false, err
	}

	d, data, err := encodeDeck(d)
	if err != nil {
		return nil, nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.DeckTTL); err != nil {
		opts.Logger.Warn("caching deck failed", "deck", opts.Deck, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "deck", len(data))
	}
	return d, data, false, nil
}

// BuildDeck is BuildWithCacheInfo without the JSON form and hit flag.
func (r *Runner) BuildDeck(ctx context.Context, opts Options) (*deck.Deck, error) {
	d, _, _, err := r.BuildWithCacheInfo(ctx, opts)
	return d, err
}

// RenderWithCacheInfo renders d in every requested format and reports
// whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *deck.Deck, opts Options) (map[string][]byte, bool, error) {
	d, data, err := encodeDeck(d)
	if err != nil {
		return nil, false, err
	}
	return r.renderData(ctx, d, data, opts)
}

// Render is RenderWithCacheInfo without the hit flag.
func (r *Runner) Render(ctx context.Context, d *deck.Deck, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, opts)
	return artifacts, err
}

func (r *Runner) renderData(ctx context.Context, d *deck.Deck, data []byte, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	deckHash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if out, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = out
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		allCached = false

		out, err := renderFormat(ctx, d, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = out
		if err := r.Cache.Set(ctx, key, out, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("caching artifact failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(out))
	}
	return artifacts, allCached, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func readDocument(opts Options) (*deck.Deck, []byte, error) {
	var (
		d   *deck.Deck
		err error
	)
	if opts.Input != "" {
		d, err = deckio.ImportJSON(opts.Input)
	} else {
		d, err = deckio.ReadJSON(bytes.NewReader(opts.Document))
	}
	if err != nil {
		return nil, nil, err
	}
	return encodeDeck(d)
}

// encodeDeck validates and freezes d and returns it with its JSON form.
func encodeDeck(d *deck.Deck) (*deck.Deck, []byte, error) {
	if d == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "nil deck")
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	d.Freeze()
	var buf bytes.Buffer
	if err := deckio.WriteJSON(d, &buf); err != nil {
		return nil, nil, err
	}
	return d, buf.Bytes(), nil
}
