package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPauseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "pause",
		Aliases: []string{"p"},
		Short:   "Pause current task",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.tasks.Pause(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Paused task %d\n", task.ID)
			return nil
		},
	}
}
