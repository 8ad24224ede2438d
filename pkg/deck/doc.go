// Package deck is the slide data model: a deck of slides, each holding an
// ordered list of drawing instructions.
//
// # Units
//
// All geometry is in [EMU] (English Metric Units, 914400 per inch). Use
// [Inches] and [Points] to convert; font sizes stay in points.
//
// # Primitives
//
// A [Slide] exposes the drawing primitives:
//
//   - [Slide.FillBackground] sets the solid page background
//   - [Slide.DrawRect], [Slide.DrawRoundedCard], [Slide.DrawOval] add filled
//     shapes, optionally outlined with [WithBorder]
//   - [Slide.DrawText] adds one run of text
//   - [Slide.DrawTextBlock] adds an ordered block of [Line] values, each a
//     [PlainLine] or [StyledLine], optionally bulleted
//
// Every primitive validates its [Rect]: a negative position or a zero width
// or height fails with an INVALID_GEOMETRY error and nothing is recorded.
//
// # Lifecycle
//
// Slides are appended with [Deck.AddSlide]. Adding a slide freezes the one
// before it, and [Deck.Freeze] seals the whole deck before serialization.
// Drawing on a frozen slide fails with a FROZEN error.
//
//	d := deck.New(deck.Widescreen, deck.Meta{Title: "Overview"})
//	s, _ := d.AddSlide()
//	_ = s.FillBackground(deck.MustColor("0F172A"))
//	_ = s.DrawText("Hello", deck.InchBox(0.6, 0.6, 11, 0.6), deck.TextStyle{Size: 30})
//	d.Freeze()
//
// Layout helpers that combine primitives live in [github.com/matzehuels/stackdeck/pkg/deck/compose];
// grid placement lives in [github.com/matzehuels/stackdeck/pkg/deck/grid].
package deck
