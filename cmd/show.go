package cmd

import (
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"s"},
		Short:   "Show current active task",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.tasks.Active(cmd.Context())
			if err != nil {
				return err
			}

			printTaskHeader(cmd.OutOrStdout())
			printTask(cmd.OutOrStdout(), *task, a.loc)
			return nil
		},
	}
}
