// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	UserID string               `json:"user_id,omitempty"`
	Online bool                 `json:"online"`
	Status service.ClientStatus `json:"status"`
}

func newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the server change status and the local queue depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runStatus(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	}
}

func runStatus(ctx context.Context, w io.Writer, opts *RootOptions, app *App) error {
	status, err := app.Services().SyncService.Status(ctx)
	if err != nil && !errors.Is(err, adapter.ErrNetworkUnavailable) {
		return fmt.Errorf("get status: %w", err)
	}

	out := statusOutput{Online: err == nil, Status: status}
	if userID, parseErr := utils.ParseUserIDFromJWT(app.cfg.App.Token); parseErr == nil {
		out.UserID = userID
	}

	return opts.output(w, out, func(w io.Writer) error {
		if out.UserID != "" {
			fmt.Fprintf(w, "user:         %s\n", out.UserID)
		}
		if !out.Online {
			fmt.Fprintln(w, "server:       unreachable")
		} else {
			fmt.Fprintln(w, "server:       online")
			changes := "no"
			if status.Server.HasChangesSinceLastSync {
				changes = "yes"
			}
			fmt.Fprintf(w, "changes:      %s\n", changes)
			fmt.Fprintf(w, "last change:  %s\n", formatTime(status.Server.LastDataChangeDate))
			fmt.Fprintf(w, "last sync:    %s\n", formatTime(status.Server.LastSyncDate))
		}
		_, err := fmt.Fprintf(w, "queued:       %d\n", status.Pending)
		return err
	})
}
