package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current [id-prefix]",
		Short: "Show or set the displayed website",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := newEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close(ctx)

			if len(args) == 0 {
				cur := e.controller.Current()
				if cur == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No current website.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", cur.DisplayTitle(), cur.URL)
				return nil
			}

			w, err := e.controller.FindByIDPrefix(args[0])
			if err != nil {
				return err
			}
			if err := e.controller.MakeCurrent(ctx, w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Displaying %s\n", w.DisplayTitle())
			return nil
		},
	}
}
