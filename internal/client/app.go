// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/internal/tui"
	"github.com/MKhiriev/go-expense-sync/models"
)

// App owns the client storages, the server adapter and the services built on
// top of them for the lifetime of one CLI invocation.
type App struct {
	cfg       *config.ClientConfig
	services  *service.ClientServices
	storages  *store.ClientStorages
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp opens the offline queue database, connects the server adapter and
// drops queue entries acknowledged by a previous run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.Workers, logger)

	purged, err := services.OfflineQueue.Purge(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("purge synced mutations: %w", err), storages.Close())
	}
	if purged > 0 {
		logger.Info().Str("func", "client.NewApp").Int64("purged", purged).Msg("removed synced queue entries")
	}

	return &App{
		cfg:       cfg,
		services:  services,
		storages:  storages,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Services exposes the client services to the CLI commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the background sync job and shows the status screen until the
// user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	return tui.New(a.services, a.buildInfo, a.logger).Run(ctx, 0)
}

func (a *App) Close() error {
	return a.storages.Close()
}
