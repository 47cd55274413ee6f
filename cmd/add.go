package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	model "task-tracker.com/td/internal/models"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		priority int
		due      string
	)

	cmd := &cobra.Command{
		Use:     "add <task>",
		Aliases: []string{"a"},
		Short:   "Add a new task",
		Long:    "Add a new task. Wrap sentences in quotes.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p *int
			if cmd.Flags().Changed("priority") {
				p = &priority
			}

			task, err := a.tasks.AddTask(cmd.Context(), args[0], p, due)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task [%d] \"%s\"\n", task.ID, task.Description)
			return nil
		},
	}

	cmd.Flags().IntVarP(&priority, "priority", "p", model.DefaultPriority, "Priority [1, 5]")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date, DD.MM.YYYY")

	return cmd
}
