package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/helmvals/internal/app"
	"go.trai.ch/zerr"
)

func addQueryFlags(cmd *cobra.Command, formats string) {
	cmd.Flags().StringP("file", "f", "", "Template document to inspect")
	cmd.Flags().IntP("line", "l", 0, "0-based line of the cursor")
	cmd.Flags().IntP("column", "c", 0, "0-based character offset of the cursor")
	cmd.Flags().String("text", "", "Use this text instead of reading the line from the document")
	cmd.Flags().StringP("format", "o", "", "Output format: "+formats)
	_ = cmd.MarkFlagRequired("file")
}

func queryOptions(cmd *cobra.Command) (app.QueryOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return app.QueryOptions{}, zerr.Wrap(err, "failed to get working directory")
	}

	file, _ := cmd.Flags().GetString("file")
	line, _ := cmd.Flags().GetInt("line")
	column, _ := cmd.Flags().GetInt("column")
	format, _ := cmd.Flags().GetString("format")

	opts := app.QueryOptions{
		Cwd:      cwd,
		File:     file,
		Line:     line,
		Column:   column,
		Format:   format,
		Settings: settingsOverrides(cmd),
	}
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		opts.Text = &text
	}
	return opts, nil
}
