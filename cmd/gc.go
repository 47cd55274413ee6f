package cmd

import (
	"github.com/spf13/cobra"
)

func newGcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Delete cancelled tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.tasks.CollectGarbage(cmd.Context())
			if err != nil {
				return err
			}

			printRemoved(cmd, removed)
			return nil
		},
	}
}
