package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/helmvals/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer newline-delimited JSON requests on stdin",
		Long: "Serve reads one JSON request per line from stdin and writes one JSON response per line to stdout.\n" +
			"Values files are cached between requests and reloaded when they change on disk.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to get working directory")
			}
			return c.app.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), app.ServeOptions{
				Cwd:      cwd,
				Settings: settingsOverrides(cmd),
			})
		},
	}
}
