package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newHoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hover",
		Short: "Show the value of the reference under the cursor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := queryOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Hover(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	addQueryFlags(cmd, "markdown, plain, or json")
	return cmd
}
