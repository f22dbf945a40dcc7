package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Schedule the stale transitive closure of the given targets (or every endpoint)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			submitted, err := c.app.Run(cmd.Context(), c.workflowPath(cmd), args, dryRun)
			if err != nil {
				return err
			}

			count := 0
			for _, wasSubmitted := range submitted {
				if wasSubmitted {
					count++
				}
			}
			verb := "submitted"
			if dryRun {
				verb = "would submit"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d requested target(s)\n", verb, count, len(submitted))
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "record would-be submissions without mutating state or calling the backend")
	return cmd
}
