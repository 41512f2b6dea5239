package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Suggest the next segment of the reference before the cursor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := queryOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Complete(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	addQueryFlags(cmd, "plain or json")
	return cmd
}
