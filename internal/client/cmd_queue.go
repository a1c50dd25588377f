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

func newQueueCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and replay the offline write queue",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List writes waiting for the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runQueueList(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "replay",
		Short: "Send queued writes to the server in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runQueueReplay(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	})

	return cmd
}

func runQueueList(ctx context.Context, w io.Writer, opts *RootOptions, app *App) error {
	pending, err := app.Services().OfflineQueue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("list queue: %w", err)
	}
	if pending == nil {
		pending = []models.OfflineMutation{}
	}

	return opts.output(w, pending, func(w io.Writer) error {
		if len(pending) == 0 {
			_, err := fmt.Fprintln(w, "queue is empty")
			return err
		}

		rows := make([][]string, 0, len(pending))
		for _, p := range pending {
			rows = append(rows, []string{
				fmt.Sprint(p.Seq),
				p.LocalID,
				p.EnqueuedAt.UTC().Format(timeLayout),
				string(p.Mutation.Op),
				string(p.Mutation.Entity),
				p.Mutation.RecordID,
				fmt.Sprint(p.Attempts),
				p.LastError,
			})
		}
		_, err := fmt.Fprintln(w, renderTable([]string{"SEQ", "LOCAL ID", "ENQUEUED", "OP", "ENTITY", "RECORD", "ATTEMPTS", "LAST ERROR"}, rows))
		return err
	})
}

func runQueueReplay(ctx context.Context, w io.Writer, opts *RootOptions, app *App) error {
	report, err := app.Services().OfflineQueue.Replay(ctx)
	if err != nil {
		return fmt.Errorf("replay queue: %w", err)
	}

	return opts.output(w, report, func(w io.Writer) error {
		fmt.Fprintf(w, "sent %d of %d, %d left\n", report.Synced, report.Attempted, report.Remaining)
		if report.StoppedAt != "" {
			_, err := fmt.Fprintf(w, "stopped at %s, server unreachable\n", report.StoppedAt)
			return err
		}
		return nil
	})
}
