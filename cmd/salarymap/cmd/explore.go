package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Run an interactive session: every command is one user action and redraws
// the dashboard.
func exploreCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the dataset interactively.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			a.banner()
			if err := a.load(ctx); err != nil {
				return err
			}

			s, err := a.session(a.cfg.Filters)
			if err != nil {
				return err
			}
			if err := s.Start(); err != nil {
				a.logger.Warn("initial render incomplete", a.logger.Args("error", err.Error()))
			}
			fmt.Fprintln(a.out, pterm.Info.Sprint("type 'help' for commands, 'quit' to leave"))
			return s.Explore(ctx, cmd.InOrStdin(), a.out)
		},
	}
	return cmd
}
