package commands

import (
	"fmt"

	"wfgraph/internal/adapters/tui"
	"wfgraph/internal/app"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [targets...]",
		Short: "Report the derived status of the given targets (or every endpoint) without scheduling",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := c.app.Status(cmd.Context(), c.workflowPath(cmd), args)
			if err != nil {
				return err
			}

			useTUI, _ := cmd.Flags().GetBool("tui")
			if !useTUI {
				for _, r := range reports {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.Name, r.Status)
				}
				return nil
			}
			return c.renderStatusTUI(cmd, reports)
		},
	}
	cmd.Flags().Bool("tui", false, "render the result as a Bubble Tea status view instead of plain text")
	return cmd
}

// renderStatusTUI publishes reports as StatusUpdates to a fresh Renderer and
// waits for it to quit once the channel is drained and closed.
func (c *CLI) renderStatusTUI(cmd *cobra.Command, reports []app.TargetStatusReport) error {
	if c.tui == nil {
		return zerr.New("--tui requires a TUI factory, none was wired into this CLI")
	}

	renderer, updates := c.tui(tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
	if err := renderer.Start(cmd.Context()); err != nil {
		return err
	}
	for _, r := range reports {
		updates <- tui.StatusUpdate{Name: r.Name, Status: r.Status}
	}
	close(updates)
	return renderer.Wait()
}
