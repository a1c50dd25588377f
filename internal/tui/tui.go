// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI shows the client sync status and lets the user drive the queue and
// the server sync by hand.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. refreshEvery is the screen refresh
// period; the background job keeps its own schedule.
func (t *TUI) Run(ctx context.Context, refreshEvery time.Duration) error {
	root := NewRootModel(newSyncModel(ctx, t.services, refreshEvery), t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
	}
	return err
}
