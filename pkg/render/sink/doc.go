// Package sink serializes a [deck.Deck] into output formats.
//
//   - PPTX: [RenderPPTX] writes a PowerPoint package with GoPPT
//   - PDF: [RenderPDF] writes one page per slide with gofpdf
//   - PNG: [RenderPNG] rasterizes one slide with gg
//   - SVG: [RenderSVG] writes one slide as vector markup
//   - JSON: [RenderJSON] writes the interchange format of package io
//
// Every renderer takes functional options and is deterministic: the same
// deck and options produce byte-identical output. PPTX packages are
// normalized after writing so entry order and timestamps never vary.
//
// PNG and SVG text is wrapped with the bundled Go fonts; PDF text uses the
// core Helvetica and Courier metrics. Text taller than its box is drawn past
// the box edge, never clipped or shrunk.
package sink
