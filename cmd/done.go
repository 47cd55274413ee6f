package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd(a *app) *cobra.Command {
	var next bool

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"d"},
		Short:   "Mark a task as complete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !next {
				if _, err := a.tasks.Complete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(out, "Marked task [%d] complete\n", id)
				return nil
			}

			completed, promoted, err := a.tasks.CompleteAndAdvance(cmd.Context(), id)
			if completed != nil {
				fmt.Fprintf(out, "Marked task [%d] complete\n", completed.ID)
			}
			if err != nil {
				return err
			}
			if promoted != nil {
				fmt.Fprintf(out, "Set task %d to in progress.\n", promoted.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&next, "next", "n", false, `Also promote next task to "In Progress"`)
	return cmd
}
