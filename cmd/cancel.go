package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCancelCmd(a *app) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:     "cancel <id>",
		Aliases: []string{"c"},
		Short:   "Cancel a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !purge {
				if _, err := a.tasks.Cancel(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(out, "Cancelled task %d\n", id)
				return nil
			}

			cancelled, removed, err := a.tasks.CancelAndCollect(cmd.Context(), id)
			if cancelled != nil {
				fmt.Fprintf(out, "Cancelled task %d\n", cancelled.ID)
			}
			if err != nil {
				return err
			}
			printRemoved(cmd, removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&purge, "delete", "d", false, "Hard delete task on cancel")
	return cmd
}

func printRemoved(cmd *cobra.Command, removed int64) {
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cancelled task(s)\n", removed)
}
