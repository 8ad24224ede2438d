package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackdeck/internal/server"
)

// serveCommand creates the command that runs the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		cf   cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve catalog decks over HTTP",
		Long: `Serve exposes the catalog over HTTP. Artifacts are cached on disk, or in
Redis with --redis so several instances can share one cache.

Examples:
  stackdeck serve --addr :8080
  curl -o overview.pdf 'localhost:8080/api/v1/decks/overview?format=pdf'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cf)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Listening on %s", StyleHighlight.Render(addr))
			printNextStep("Try", "curl localhost"+addr+"/api/v1/decks")
			return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cf.register(cmd)

	return cmd
}
