// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/models"
)

type statusLoadedMsg struct {
	client  service.ClientStatus
	job     service.SyncJobStatus
	pending  []models.OfflineMutation
	err      error
	queueErr error
}

type replayDoneMsg struct {
	report models.ReplayReport
	err    error
}

type syncDoneMsg struct {
	result models.SyncResult
	err    error
}

type refreshTickMsg time.Time

type clearStatusMsg struct{}
