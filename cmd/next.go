package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNextCmd(a *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:     "next",
		Aliases: []string{"n"},
		Short:   "Automatically choose next task in line",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var target *int64
			if cmd.Flags().Changed("id") {
				target = &id
			}

			task, err := a.tasks.Advance(cmd.Context(), target)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set task %d to in progress.\n", task.ID)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&id, "id", "i", 0, "Promote this task instead of the next in line")
	return cmd
}
