package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

// renderFlags holds the output flags shared by build and render.
type renderFlags struct {
	output     string  // output file (one deck, one format) or directory
	formats    string  // comma-separated output formats
	slide      int     // one-based slide for png and svg
	dpi        float64 // png resolution
	embedFonts bool    // embed font faces in svg
	refresh    bool    // ignore cached decks and artifacts
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or directory")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): pptx (default), pdf, png, svg, json (comma-separated)")
	cmd.Flags().IntVar(&f.slide, "slide", 1, "slide rendered by png and svg (1-based)")
	cmd.Flags().Float64Var(&f.dpi, "dpi", pipeline.DefaultDPI, "png resolution")
	cmd.Flags().BoolVar(&f.embedFonts, "embed-fonts", false, "embed font faces in svg output")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "rebuild even when cached")
}

// apply copies the flags onto pipeline options and validates them.
func (f *renderFlags) apply(opts *pipeline.Options) error {
	if f.slide < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "slide must be at least 1, got %d", f.slide)
	}
	opts.Formats = parseFormats(f.formats)
	opts.Slide = f.slide - 1
	opts.DPI = f.dpi
	opts.EmbedFonts = f.embedFonts
	opts.Refresh = f.refresh
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	if f.embedFonts && !slices.Contains(opts.Formats, pipeline.FormatSVG) {
		printWarning("--embed-fonts only affects svg output")
	}
	return nil
}

// renderCommand creates the command that renders a deck JSON document.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags renderFlags
		cf    cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "render [deck.json]",
		Short: "Render a deck JSON document to presentation formats",
		Long: `Render reads a deck previously written with --format json and serializes
it again, for example to turn a stored deck into PowerPoint or PDF.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Input: args[0], Logger: c.Logger}
			if err := flags.apply(&opts); err != nil {
				return err
			}
			return c.runPipeline(cmd.Context(), cf, opts, basePath(args[0]), flags.output)
		},
	}

	flags.register(cmd)
	cf.register(cmd)

	return cmd
}

// runPipeline executes one pipeline run and writes its artifacts.
func (c *CLI) runPipeline(ctx context.Context, cf cacheFlags, opts pipeline.Options, base, output string) error {
	runner, err := c.newRunner(ctx, cf)
	if err != nil {
		return err
	}
	defer runner.Close()

	label := opts.Deck
	if label == "" {
		label = filepath.Base(opts.Input)
	}
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", label))
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}

	prog := newProgress(c.Logger)
	paths, err := writeArtifacts(result.Artifacts, opts.Formats, base, output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	printSuccess("%s", result.Deck.Meta.Title)
	printStats(result.Stats, result.CacheInfo.BuildHit && result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes each artifact and returns the written paths in
// format order. A single artifact goes to output when output names a file;
// otherwise files are named base.<format> inside output.
func writeArtifacts(artifacts map[string][]byte, formats []string, base, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(output, base, format, len(formats))
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(errors.ErrCodeWrite, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath resolves where one format is written.
func outputPath(output, base, format string, count int) string {
	if output != "" && count == 1 && isFormatExt(filepath.Ext(output)) {
		return output
	}
	return filepath.Join(output, base+"."+format)
}

func isFormatExt(ext string) bool {
	return pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// basePath strips the directory and a format extension from an input path.
func basePath(input string) string {
	name := filepath.Base(input)
	if ext := filepath.Ext(name); isFormatExt(ext) {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
