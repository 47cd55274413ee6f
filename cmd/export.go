package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	model "task-tracker.com/td/internal/models"
	"task-tracker.com/td/internal/report"
)

var reportTitles = map[model.ListScope]string{
	model.ScopeActive:    "Open tasks",
	model.ScopeCompleted: "Completed tasks",
	model.ScopeAll:       "All tasks",
}

func newExportCmd(a *app) *cobra.Command {
	var flags scopeFlags

	cmd := &cobra.Command{
		Use:   "export <file.pdf>",
		Short: "Write the task list to a PDF report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := flags.scope()
			tasks, err := a.tasks.ListTasks(cmd.Context(), scope)
			if err != nil {
				return err
			}

			file, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			if err := report.WritePDF(file, reportTitles[scope], tasks, a.loc); err != nil {
				_ = file.Close()
				return fmt.Errorf("write report: %w", err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", len(tasks), args[0])
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
