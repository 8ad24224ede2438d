// Package io provides JSON import and export for decks.
//
// # Overview
//
// A deck document records the exact drawing instructions of every slide, in
// order, with all text attributes already resolved. It is used to:
//
//   - Inspect what a deck builder produced without opening a presentation
//   - Re-render a deck into other formats with "stackdeck render"
//   - Cache built decks between runs
//
// # JSON Format
//
//	{
//	  "version": 1,
//	  "meta": {"title": "Overview"},
//	  "page": {"width": 12191695, "height": 6858000},
//	  "slides": [
//	    {
//	      "id": "5d3c...",
//	      "background": "#0F172A",
//	      "elements": [
//	        {"type": "shape", "shape": {"kind": "rect", "rect": {...}, "fill": "#389CF7"}},
//	        {"type": "text", "text": {"rect": {...}, "runs": [...], "line_spacing": 1}}
//	      ]
//	    }
//	  ]
//	}
//
// All lengths are EMU. Slide IDs are derived from the deck title and slide
// index, so exporting the same deck twice yields identical bytes.
//
// [ReadJSON] validates every element with the same rules as the drawing
// primitives; a document that could not have been drawn is rejected.
package io
