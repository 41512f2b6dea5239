package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDefinitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "definition",
		Aliases: []string{"def"},
		Short:   "List where the reference under the cursor is defined",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := queryOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Definition(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	addQueryFlags(cmd, "plain or json")
	return cmd
}
