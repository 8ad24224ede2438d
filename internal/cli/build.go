package cli

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/internal/decks"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

// buildCommand creates the command that builds catalog decks.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		flags     renderFlags
		cf        cacheFlags
		themePath string
	)

	cmd := &cobra.Command{
		Use:   "build [deck...]",
		Short: "Build decks from the catalog and write them to files",
		Long: `Build lays out one or more decks from the built-in catalog and writes
each requested format. Without arguments an interactive picker is shown.

Examples:
  stackdeck build overview
  stackdeck build agentic -f pptx,pdf -o out/
  stackdeck build overview -f png --slide 3 --dpi 144`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return decks.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				name, err := pickDeck()
				if err != nil || name == "" {
					return err
				}
				names = []string{name}
			}
			if len(names) > 1 && isFormatExt(filepath.Ext(flags.output)) {
				return errors.New(errors.ErrCodeInvalidPath, "--output must be a directory when building several decks")
			}

			for _, name := range names {
				entry, err := decks.Lookup(name)
				if err != nil {
					return err
				}
				opts := pipeline.Options{Deck: entry.Name, ThemePath: themePath, Logger: c.Logger}
				if err := flags.apply(&opts); err != nil {
					return err
				}
				if err := c.runPipeline(cmd.Context(), cf, opts, entry.Name, flags.output); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cf.register(cmd)
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file (default: built-in navy theme)")

	return cmd
}

// pickDeck shows the interactive deck picker. It returns an empty name
// when the user quits without choosing.
func pickDeck() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New(errors.ErrCodeInvalidInput, "deck name required (available: %s)", strings.Join(decks.Names(), ", "))
	}
	final, err := tea.NewProgram(NewDeckListModel(decks.All())).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "deck picker")
	}
	m := final.(DeckListModel)
	if m.Selected == nil {
		printInfo("No deck selected")
		return "", nil
	}
	return m.Selected.Name, nil
}
