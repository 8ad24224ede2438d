package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/render/inspect"
)

// inspectCommand creates the command that reads back a PPTX package.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		asJSON    bool
		thumbnail string
		slide     int
		width     int
	)

	cmd := &cobra.Command{
		Use:   "inspect [deck.pptx]",
		Short: "Read back a PowerPoint file and summarize its slides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if thumbnail != "" {
				if err := errors.ValidateOutputPath(thumbnail); err != nil {
					return err
				}
				data, err := inspect.Thumbnail(path, slide-1, width)
				if err != nil {
					return err
				}
				if err := os.WriteFile(thumbnail, data, 0o644); err != nil {
					return errors.Wrap(errors.ErrCodeWrite, err, "write %s", thumbnail)
				}
				printSuccess("Slide %d thumbnail", slide)
				printFile(thumbnail)
				return nil
			}

			rep, err := inspect.File(path)
			if err != nil {
				return err
			}
			c.Logger.Debug("inspected", "path", path, "slides", len(rep.Slides), "shapes", rep.ShapeCount())
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(path, rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "write a PNG thumbnail of --slide to this file")
	cmd.Flags().IntVar(&slide, "slide", 1, "slide for --thumbnail (1-based)")
	cmd.Flags().IntVar(&width, "width", 0, "thumbnail width in pixels (default 960)")

	return cmd
}

// printReport prints one line per slide followed by its text shapes.
func printReport(path string, rep *inspect.Report) {
	printInfo("%s", StyleHighlight.Render(path))
	printKeyValue("Slides", StyleNumber.Render(fmt.Sprint(len(rep.Slides))))
	printKeyValue("Shapes", StyleNumber.Render(fmt.Sprint(rep.ShapeCount())))
	for _, s := range rep.Slides {
		texts := 0
		for _, sh := range s.Shapes {
			if sh.Kind == inspect.KindText {
				texts++
			}
		}
		fmt.Printf("\n%s %s\n", StyleTitle.Render(fmt.Sprintf("Slide %d", s.Index+1)),
			StyleDim.Render(fmt.Sprintf("%d shapes · %d text", len(s.Shapes), texts)))
		for _, sh := range s.Shapes {
			if sh.Text == "" {
				continue
			}
			printDetail("%s", firstLine(sh.Text))
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
