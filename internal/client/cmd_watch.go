// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newWatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the background sync job with a live status screen",
		Long: `Run the background sync job with a live status screen.

Every sync interval the job replays the offline queue and, once the queue is
drained and no write happened for the inactivity delay, asks the server to
sync. Keys: r replay, s sync, f force sync, c copy the last archive name,
v build info, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Run(ctx)
			})
		},
	}
}
