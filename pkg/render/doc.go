// Package render groups the output side of stackdeck.
//
// A [deck.Deck] is built once and serialized by the renderers in [sink]:
//
//	pptx, err := sink.RenderPPTX(d)
//	pdf, err := sink.RenderPDF(d)
//	png, err := sink.RenderPNG(d, sink.WithPNGSlide(0), sink.WithDPI(144))
//	svg, err := sink.RenderSVG(d, sink.WithSVGSlide(2))
//
// PowerPoint packages can be read back with [inspect], which reports the
// shapes and text of every slide and rasterizes thumbnails:
//
//	rep, err := inspect.Bytes(pptx)
//	fmt.Println(len(rep.Slides), rep.ShapeCount())
//
// Both packages depend only on [deck] and [theme]; caching and format
// selection live in [pipeline].
//
// [deck.Deck]: github.com/matzehuels/stackdeck/pkg/deck.Deck
// [deck]: github.com/matzehuels/stackdeck/pkg/deck
// [theme]: github.com/matzehuels/stackdeck/pkg/theme
// [pipeline]: github.com/matzehuels/stackdeck/pkg/pipeline
// [sink]: github.com/matzehuels/stackdeck/pkg/render/sink
// [inspect]: github.com/matzehuels/stackdeck/pkg/render/inspect
package render
