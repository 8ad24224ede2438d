// Package pkg provides the core libraries of stackdeck, a toolkit for
// building presentation decks from declarative slide layouts.
//
// # Overview
//
// A deck is pure data: slides holding drawing instructions positioned in
// EMU. Layout helpers turn rows of content into instructions, and
// renderers serialize the finished deck. The pkg directory is organized
// into four areas:
//
//  1. [deck] - The slide model, geometry, text runs, grids and composites
//  2. [theme] - Palette, fonts and sizes passed explicitly to every layout
//  3. [render] - PPTX, PDF, PNG, SVG and JSON output, plus PPTX read-back
//  4. [pipeline] - Orchestration (build → render) with caching
//
// # Architecture
//
// The typical data flow through stackdeck:
//
//	Slide builders (rows of content)
//	         ↓
//	    [deck/compose] package (cards, banners, grids of tiles)
//	         ↓
//	    [deck] package (frozen deck of instructions)
//	         ↓
//	    [render/sink] package (serialization)
//	         ↓
//	    PPTX/PDF/PNG/SVG/JSON output
//
// # Quick Start
//
// Build a one-card slide and write it as PowerPoint:
//
//	import (
//	    "github.com/matzehuels/stackdeck/pkg/deck"
//	    "github.com/matzehuels/stackdeck/pkg/deck/compose"
//	    "github.com/matzehuels/stackdeck/pkg/render/sink"
//	    "github.com/matzehuels/stackdeck/pkg/theme"
//	)
//
//	th := theme.Default()
//	d := deck.New(deck.Widescreen, deck.Meta{Title: "Demo"})
//	s, _ := d.AddSlide()
//	_ = s.FillBackground(th.Palette.Background)
//	_ = compose.Card(s, th, deck.InchBox(0.5, 0.5, 4, 2.5), compose.CardSpec{
//	    Title:  "Gateway",
//	    Body:   deck.Lines("Routing", "Rate limits"),
//	    Accent: th.Palette.Blue,
//	})
//	d.Freeze()
//	pptx, _ := sink.RenderPPTX(d)
//
// # Main Packages
//
//   - [deck]: Deck, Slide, Rect, Color, text runs and validation
//   - [deck/grid]: Row-major placement of repeated tiles
//   - [deck/compose]: Card, banner, cover, flow, metric and stack layouts
//   - [theme]: Theme values and TOML theme files
//   - [io]: JSON import and export of decks
//   - [fonts]: Bundled font faces for measurement and rasterization
//   - [render/sink]: Output renderers
//   - [render/inspect]: PPTX read-back
//
// ## Infrastructure
//
//   - [cache]: Null, file and Redis caches with key derivation
//   - [pipeline]: Build → render runner shared by the CLI and server
//   - [observability]: Hooks for build, render, cache and server events
//   - [errors]: Coded errors and input validation
//   - [buildinfo]: Version information injected at build time
package pkg
