// Package commands implements the wfctl CLI commands.
package commands

import (
	"context"

	"wfgraph/internal/adapters/tui"
	"wfgraph/internal/app"

	"github.com/spf13/cobra"
)

// CLI represents the command line interface for wfctl.
type CLI struct {
	app     *app.App
	tui     tui.Factory
	rootCmd *cobra.Command
}

// New creates a new CLI instance bound to a. tuiFactory may be nil, in
// which case the --tui status flag is rejected at run time.
func New(a *app.App, tuiFactory tui.Factory) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wfctl",
		Short:         "Build and schedule a scientific workflow's stale targets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("file", "f", "workflow.yaml", "path to the workflow file")

	c := &CLI{app: a, tui: tuiFactory, rootCmd: rootCmd}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command under ctx.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) workflowPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("file")
	return path
}
