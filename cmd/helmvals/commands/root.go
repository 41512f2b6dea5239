// Package commands implements the CLI commands for helmvals.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/helmvals/internal/app"
	"go.trai.ch/helmvals/internal/build"
)

// CLI represents the command line interface for helmvals.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Hover(ctx context.Context, w io.Writer, opts app.QueryOptions) error
	Definition(ctx context.Context, w io.Writer, opts app.QueryOptions) error
	Complete(ctx context.Context, w io.Writer, opts app.QueryOptions) error
	Serve(ctx context.Context, in io.Reader, out io.Writer, opts app.ServeOptions) error
	SetLogMode(verbose, jsonMode bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "helmvals",
		Short:         "Resolve .Values references in Helm templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.Bool("verbose", false, "Show debug output")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.StringSlice("value-files", nil, "Glob patterns of values files, in priority order")
	flags.Bool("show-file-names", true, "Show the values file each value comes from")
	flags.StringSlice("root-marker", nil, "Stop searching parent directories at one containing this entry")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		c.app.SetLogMode(verbose, logJSON)
	}

	rootCmd.AddCommand(c.newHoverCmd())
	rootCmd.AddCommand(c.newDefinitionCmd())
	rootCmd.AddCommand(c.newCompleteCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream read by serve. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// settingsOverrides collects the settings flags the user set explicitly.
func settingsOverrides(cmd *cobra.Command) app.SettingsOverrides {
	var overrides app.SettingsOverrides

	overrides.ValueFiles, _ = cmd.Flags().GetStringSlice("value-files")
	overrides.RootMarkers, _ = cmd.Flags().GetStringSlice("root-marker")
	if cmd.Flags().Changed("show-file-names") {
		show, _ := cmd.Flags().GetBool("show-file-names")
		overrides.ShowFileNames = &show
	}
	return overrides
}
