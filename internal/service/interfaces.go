// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChangeTracker records when a user's data last changed and when it was
// last synced, and decides whether a sync is needed.
type ChangeTracker interface {
	// MarkDataChanged stores now as the last data change of userID.
	// Callers log a failure and carry on.
	MarkDataChanged(ctx context.Context, userID string) error
	// HasChangesSinceLastSync fails open: a read error reports true.
	HasChangesSinceLastSync(ctx context.Context, userID string) bool
	GetChangeStatus(ctx context.Context, userID string) (models.ChangeStatus, error)
	// MarkSynced stores at as the last sync of userID.
	MarkSynced(ctx context.Context, userID string, at time.Time) error
	DeleteChangeState(ctx context.Context, userID string) error
}

// SnapshotCodec turns snapshots into archives and back.
type SnapshotCodec interface {
	Encode(snapshot models.Snapshot) ([]byte, error)
	Decode(data []byte) (models.Snapshot, error)
}

// SnapshotService exports a consistent snapshot of one user.
type SnapshotService interface {
	// Export reads every table in one transaction and encodes the result.
	Export(ctx context.Context, userID string) (models.Snapshot, []byte, error)
	Decode(data []byte) (models.Snapshot, error)
}

// RestoreReconciler applies a snapshot to the stored dataset.
type RestoreReconciler interface {
	Restore(ctx context.Context, userID string, mode models.RestoreMode, snapshot models.Snapshot) (models.RestoreResult, error)
}

// SyncOrchestrator drives syncs to the remote targets and restores from
// archives. At most one sync or restore runs per user.
type SyncOrchestrator interface {
	// MaybeSync runs Sync only when data changed since the last sync.
	MaybeSync(ctx context.Context, userID string, targets models.SyncTargets) (models.SyncResult, error)
	Sync(ctx context.Context, userID string, targets models.SyncTargets) (models.SyncResult, error)
	RestoreFromBackup(ctx context.Context, userID string, archive []byte, mode models.RestoreMode) (models.RestoreResult, error)
	RestoreFromStoredBackup(ctx context.Context, userID, name string, mode models.RestoreMode) (models.RestoreResult, error)
	// Download exports a fresh archive for streaming to the caller.
	Download(ctx context.Context, userID string) ([]byte, models.Snapshot, error)
	ListBackups(ctx context.Context, userID string) ([]models.FileRef, error)
	Status(ctx context.Context, userID string) (models.ChangeStatus, error)
}

// MutationService applies single client writes.
type MutationService interface {
	Apply(ctx context.Context, userID string, mutation models.Mutation) error
}

// AppInfoService reports the server version and its sync capabilities.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServerInfo(ctx context.Context) models.ServerInfo
}
