package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webwall/internal/urlx"
	"webwall/internal/website"
)

func newAddCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a website without opening the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := newEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close(ctx)

			w := website.New()
			w.URL = urlx.Resolve(args[0])
			if w.URL == urlx.Sentinel {
				return fmt.Errorf("%q is not a valid URL", args[0])
			}
			w.Title = title
			if w.Title == "" {
				// Best effort; an unreachable site just stays untitled.
				if t, err := e.fetcher.Title(ctx, w.URL); err == nil {
					w.Title = t
				} else {
					e.log.Debug("title fetch failed", zap.Error(err))
				}
			}

			if err := e.controller.Add(ctx, w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", w.DisplayTitle(), w.URL)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "custom title (skips the automatic fetch)")
	return cmd
}
