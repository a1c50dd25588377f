// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

// ClientOfflineQueue defines the client-side write path. Writes go straight
// to the server while it is reachable and into a local FIFO otherwise.
type ClientOfflineQueue interface {
	// Submit sends mutation to the server. When the server is unreachable
	// the mutation is enqueued and the result reports Queued; that is not an
	// error. Any other server error is returned and nothing is queued.
	// While older mutations are pending, mutation is enqueued behind them
	// and the queue is replayed instead of sending it directly.
	Submit(ctx context.Context, mutation models.Mutation) (models.SubmitResult, error)

	// Enqueue appends mutation to the queue as pending with a fresh local id.
	Enqueue(ctx context.Context, mutation models.Mutation) (models.OfflineMutation, error)

	// Replay sends pending mutations in enqueue order, one at a time.
	// A success or a duplicate acknowledgement marks the entry synced; any
	// other error records the attempt and stops the pass. Synced entries are
	// purged at the end. A concurrent call returns ErrReplayInProgress.
	Replay(ctx context.Context) (models.ReplayReport, error)

	// Pending returns the entries still waiting for the server.
	Pending(ctx context.Context) ([]models.OfflineMutation, error)

	// Purge removes acknowledged entries. It runs at startup.
	Purge(ctx context.Context) (int64, error)

	// LastWrite returns the time of the latest Submit or Enqueue, zero if
	// none happened in this process.
	LastWrite() time.Time
}

// ClientSyncService is the client facade over the server's sync endpoints.
type ClientSyncService interface {
	// Status returns the server change status and the local queue depth.
	Status(ctx context.Context) (ClientStatus, error)
	TriggerSync(ctx context.Context, req models.SyncRequest) (models.SyncResult, error)
	Download(ctx context.Context) ([]byte, string, error)
	Restore(ctx context.Context, archive []byte, mode models.RestoreMode) (models.RestoreResult, error)
	ListBackups(ctx context.Context) ([]models.FileRef, error)
	RestoreStored(ctx context.Context, name string, mode models.RestoreMode) (models.RestoreResult, error)
}

// ClientSyncJob defines the contract of the background worker that keeps
// the offline queue drained and triggers server syncs when idle.
type ClientSyncJob interface {
	// Start launches the background goroutine. It ticks every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Tick runs one ping, replay and sync round synchronously.
	Tick(ctx context.Context) SyncJobStatus

	// Status returns the outcome of the latest tick.
	Status() SyncJobStatus
}

// ClientStatus is printed by the status command.
type ClientStatus struct {
	Server  models.ChangeStatus `json:"server"`
	Pending int                 `json:"pending"`
}

// SyncJobStatus is the outcome of one tick of the client sync job.
type SyncJobStatus struct {
	At       time.Time           `json:"at"`
	Online   bool                `json:"online"`
	Replay   models.ReplayReport `json:"replay"`
	Sync     *models.SyncResult  `json:"sync,omitempty"`
	LastSync *time.Time          `json:"last_sync,omitempty"`
	Error    string              `json:"error,omitempty"`
}
