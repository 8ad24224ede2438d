package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/stackdeck/pkg/buildinfo"
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/observability"
	"github.com/matzehuels/stackdeck/pkg/render/sink"
)

// Render serializes d in every format of opts without caching.
func Render(ctx context.Context, d *deck.Deck, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		out, err := renderFormat(ctx, d, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = out
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, d *deck.Deck, format string, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	creator := opts.Creator
	if creator == "" {
		creator = buildinfo.Generator()
	}

	var (
		out []byte
		err error
	)
	switch format {
	case FormatPPTX:
		out, err = sink.RenderPPTX(d, sink.WithPPTXCreator(creator))
	case FormatPDF:
		out, err = sink.RenderPDF(d, sink.WithPDFCreator(creator))
	case FormatPNG:
		out, err = sink.RenderPNG(d, sink.WithPNGSlide(opts.Slide), sink.WithDPI(opts.DPI))
	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithSVGSlide(opts.Slide)}
		if opts.EmbedFonts {
			svgOpts = append(svgOpts, sink.WithEmbeddedFonts())
		}
		out, err = sink.RenderSVG(d, svgOpts...)
	case FormatJSON:
		out, err = sink.RenderJSON(d)
	default:
		err = ValidateFormat(format)
	}
	if err != nil && errors.GetCode(err) == "" {
		err = errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
	}

	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("rendered", "format", format, "bytes", len(out), "duration", time.Since(start))
	return out, nil
}
