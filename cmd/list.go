package cmd

import (
	"github.com/spf13/cobra"

	model "task-tracker.com/td/internal/models"
)

type scopeFlags struct {
	all       bool
	completed bool
}

func (f *scopeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "Include completed and cancelled tasks")
	cmd.Flags().BoolVar(&f.completed, "completed", false, "Only completed tasks")
	cmd.MarkFlagsMutuallyExclusive("all", "completed")
}

func (f *scopeFlags) scope() model.ListScope {
	switch {
	case f.all:
		return model.ScopeAll
	case f.completed:
		return model.ScopeCompleted
	default:
		return model.ScopeActive
	}
}

func newListCmd(a *app) *cobra.Command {
	var flags scopeFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List current tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tasks.ListTasks(cmd.Context(), flags.scope())
			if err != nil {
				return err
			}

			printTasks(cmd.OutOrStdout(), tasks, a.loc)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
