package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/internal/decks"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// deckInfo is the JSON form of a catalog entry.
type deckInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slides      int    `json:"slides"`
}

// catalogInfo builds every catalog deck under the default theme to count
// its slides.
func catalogInfo() ([]deckInfo, error) {
	th := theme.Default()
	var out []deckInfo
	for _, e := range decks.All() {
		d, err := e.Build(th)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		out = append(out, deckInfo{Name: e.Name, Title: e.Title, Description: e.Description, Slides: d.Len()})
	}
	return out, nil
}

// listCommand creates the command that lists the deck catalog.
func (c *CLI) listCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the decks in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := catalogInfo()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			rows := make([][]string, len(infos))
			for i, in := range infos {
				rows[i] = []string{in.Name, in.Title, fmt.Sprint(in.Slides), in.Description}
			}
			t := deckTable(rows).
				Headers("Name", "Title", "Slides", "Description").
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return listHeaderStyle
					case col == 0:
						return StyleHighlight
					case col == 2:
						return StyleNumber
					case col == 3:
						return listDimStyle
					}
					return StyleValue
				})
			fmt.Println(t.Render())
			printNextStep("Build one", appName+" build <name>")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")

	return cmd
}
