// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/spf13/cobra"
)

// SyncOptions holds flags for the sync command.
type SyncOptions struct {
	*RootOptions
	Force  bool
	Mirror bool
	Backup bool
}

func newSyncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SyncOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Ask the server to sync your data to the mirror and the backup store",
		Long: `Ask the server to sync your data.

Without --force the server skips the sync when nothing changed since the
last one. --mirror and --backup restrict the targets; without them every
configured target is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runSync(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "sync even if nothing changed")
	cmd.Flags().BoolVar(&opts.Mirror, "mirror", false, "write the tabular mirror")
	cmd.Flags().BoolVar(&opts.Backup, "backup", false, "write a backup archive")

	return cmd
}

func runSync(ctx context.Context, w io.Writer, opts *SyncOptions, app *App) error {
	req := models.SyncRequest{
		SyncTargets: models.SyncTargets{Mirror: opts.Mirror, Backup: opts.Backup},
		Force:       opts.Force,
	}

	result, err := app.Services().SyncService.TriggerSync(ctx, req)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	return opts.output(w, result, func(w io.Writer) error {
		return writeSyncResult(w, result)
	})
}
