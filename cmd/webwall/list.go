package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured websites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := newEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close(ctx)

			sites := e.controller.All()
			if len(sites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No websites configured.")
				return nil
			}
			for _, w := range sites {
				marker := " "
				if w.IsCurrent {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %s\n", marker, w.ID[:8], w.DisplayTitle(), w.URL)
			}
			return nil
		},
	}
}
