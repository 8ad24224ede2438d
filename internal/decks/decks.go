// Package decks is the catalog of slide decks bundled with stackdeck.
//
// Each deck is a plain Go function from a [theme.Theme] to a frozen
// [deck.Deck]. Content lives in data rows next to the builder; layout is
// delegated to the composites in pkg/deck/compose.
package decks

import (
	"sort"
	"strings"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// Builder produces a deck under the given theme.
type Builder func(th theme.Theme) (*deck.Deck, error)

// Entry describes one bundled deck.
type Entry struct {
	Name        string
	Title       string
	Description string
	Build       Builder
}

var catalog = map[string]Entry{
	"overview": {
		Name:        "overview",
		Title:       "Turumba 2.0 Overview",
		Description: "Platform overview, architecture, microservices and evolution (18 slides)",
		Build:       Overview,
	},
	"agentic": {
		Name:        "agentic",
		Title:       "Agentic AI Workflow",
		Description: "Lightning talk on shipping a multi-service platform with a coding agent (12 slides)",
		Build:       Agentic,
	},
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns every entry sorted by name.
func All() []Entry {
	out := make([]Entry, 0, len(catalog))
	for _, n := range Names() {
		out = append(out, catalog[n])
	}
	return out
}

// Lookup finds a deck by name.
func Lookup(name string) (Entry, error) {
	e, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, errors.New(errors.ErrCodeDeckNotFound,
			"unknown deck %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Build validates th and builds the named deck.
func Build(name string, th theme.Theme) (*deck.Deck, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}
	return e.Build(th)
}
