// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/spf13/cobra"
)

const appName = "expense-sync-client"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	JSON       bool

	buildInfo models.AppBuildInfo
	newApp    appFactory
}

type appFactory func(ctx context.Context, opts *RootOptions) (*App, error)

// NewRootCommand creates the root command of the client CLI.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(buildInfo, loadApp)
}

func newRootCommand(buildInfo models.AppBuildInfo, factory appFactory) *cobra.Command {
	opts := &RootOptions{buildInfo: buildInfo, newApp: factory}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Expense sync client",
		Long: `Expense sync client.

Writes go to the server while it is reachable and into a local offline
queue otherwise. The queue is replayed in order once the server is back.
Settings come from APP_*, ADAPTER_*, STORAGE_DB_* and WORKERS_* environment
variables and an optional JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the JSON config file")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "print results as JSON")

	cmd.AddCommand(newVersionCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))
	cmd.AddCommand(newSyncCommand(opts))
	cmd.AddCommand(newSubmitCommand(opts))
	cmd.AddCommand(newQueueCommand(opts))
	cmd.AddCommand(newBackupCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))

	return cmd
}

func loadApp(ctx context.Context, opts *RootOptions) (*App, error) {
	cfg, err := config.GetClientConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(appName, cfg.App.LogFile)
	return NewApp(ctx, cfg, opts.buildInfo, log)
}

// withApp builds the App for one command and closes it afterwards.
func (o *RootOptions) withApp(cmd *cobra.Command, run func(ctx context.Context, app *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := o.newApp(ctx, o)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			app.logger.Err(closeErr).Str("func", "RootOptions.withApp").Msg("failed to close local storage")
		}
	}()

	return run(ctx, app)
}

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": opts.buildInfo.BuildVersion(),
					"date":    opts.buildInfo.BuildDate(),
					"commit":  opts.buildInfo.BuildCommit(),
				})
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), opts.buildInfo)
			return err
		},
	}
}
