package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id-prefix>",
		Short: "Remove a website by ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := newEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close(ctx)

			w, err := e.controller.FindByIDPrefix(args[0])
			if err != nil {
				return err
			}
			if err := e.controller.Remove(ctx, w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", w.DisplayTitle())
			return nil
		},
	}
}
