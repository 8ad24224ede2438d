// Package cache stores built decks and rendered artifacts.
//
// A [Cache] is a byte store with expirations. Three backends are provided:
// [FileCache] for the CLI, [RedisCache] for the HTTP server and [NullCache]
// to disable caching. Keys are produced by a [Keyer] so the same deck,
// theme and output options always map to the same entry.
package cache

import (
	"context"
	"time"
)

// Default lifetimes for cached entries.
const (
	DeckTTL     = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired
	// entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// DeckKeyOpts identifies the inputs a built deck depends on.
type DeckKeyOpts struct {
	ThemeHash string `json:"theme"`
	Page      string `json:"page,omitempty"`
}

// ArtifactKeyOpts identifies how a deck was rendered.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Slide  int     `json:"slide,omitempty"`
	DPI    float64 `json:"dpi,omitempty"`
	Fonts  bool    `json:"fonts,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// DeckKey is the key of a built deck in JSON form.
	DeckKey(name string, opts DeckKeyOpts) string

	// ArtifactKey is the key of a rendered artifact of the deck whose
	// JSON form hashes to deckHash.
	ArtifactKey(deckHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key inputs under a fixed prefix per entry type.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) DeckKey(name string, opts DeckKeyOpts) string {
	return hashKey("deck", name, opts)
}

func (DefaultKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", deckHash, opts)
}
