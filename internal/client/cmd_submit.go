// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/spf13/cobra"
)

// SubmitOptions holds flags for the submit command.
type SubmitOptions struct {
	*RootOptions
	ID       string
	Entity   string
	Op       string
	RecordID string
	Data     string
}

func newSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SubmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Write one record, queueing it if the server is unreachable",
		Long: `Write one record.

The record is sent to the server right away. When the server cannot be
reached the write is queued locally and replayed later.

Example:
  expense-sync-client submit --entity vehicles --op create \
    --record-id 0190c0de-7d2c-7cc3-a3f1-5a0b6c1d2e3f \
    --data '{"id":"0190c0de-7d2c-7cc3-a3f1-5a0b6c1d2e3f","name":"Daily"}'

--data accepts a JSON document or @path to a file holding one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runSubmit(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "mutation id, generated when empty")
	cmd.Flags().StringVar(&opts.Entity, "entity", "", "entity table: settings, vehicles, financing, insurance or expenses")
	cmd.Flags().StringVar(&opts.Op, "op", "", "create, update or delete")
	cmd.Flags().StringVar(&opts.RecordID, "record-id", "", "id of the record")
	cmd.Flags().StringVar(&opts.Data, "data", "", "record JSON or @file")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("op")
	_ = cmd.MarkFlagRequired("record-id")

	return cmd
}

func runSubmit(ctx context.Context, w io.Writer, opts *SubmitOptions, app *App) error {
	payload, err := readPayload(opts.Data)
	if err != nil {
		return err
	}

	mutation := models.Mutation{
		ID:       opts.ID,
		Entity:   models.Table(opts.Entity),
		Op:       models.MutationOp(opts.Op),
		RecordID: opts.RecordID,
		Payload:  payload,
	}

	result, err := app.Services().OfflineQueue.Submit(ctx, mutation)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	return opts.output(w, result, func(w io.Writer) error {
		if result.Queued {
			_, err := fmt.Fprintf(w, "queued as %s, waiting for replay\n", result.LocalID)
			return err
		}
		_, err := fmt.Fprintln(w, "applied")
		return err
	})
}

func readPayload(data string) (json.RawMessage, error) {
	if data == "" {
		return nil, nil
	}

	raw := []byte(data)
	if path, ok := strings.CutPrefix(data, "@"); ok {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}
	return raw, nil
}
