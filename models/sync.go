// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncTarget names one remote destination of a sync.
type SyncTarget string

const (
	TargetMirror SyncTarget = "mirror"
	TargetBackup SyncTarget = "backup"
)

// SyncTargets selects the destinations of a sync. The zero value means
// "every configured target".
type SyncTargets struct {
	Mirror bool `json:"mirror,omitempty"`
	Backup bool `json:"backup,omitempty"`
}

// IsZero reports whether no target was requested explicitly.
func (t SyncTargets) IsZero() bool {
	return !t.Mirror && !t.Backup
}

// SyncRequest is the body of POST /sync.
type SyncRequest struct {
	SyncTargets
	// Force skips the change check and always runs a sync.
	Force bool `json:"force,omitempty"`
}

// TargetResult reports the outcome of writing a snapshot to one target.
type TargetResult struct {
	Target SyncTarget `json:"target"`
	OK     bool       `json:"ok"`
	Error  string     `json:"error,omitempty"`
}

// SyncResult is the outcome of MaybeSync/Sync.
type SyncResult struct {
	// Skipped is set when no change happened since the last sync.
	Skipped bool `json:"skipped"`
	// Synced is set when every requested target succeeded.
	Synced bool `json:"synced"`
	// Deferred is set when a remote target was unavailable; the next sync
	// retries every target.
	Deferred  bool           `json:"deferred,omitempty"`
	Targets   []TargetResult `json:"targets,omitempty"`
	Backup    *FileRef       `json:"backup,omitempty"`
	SyncedAt  *time.Time     `json:"synced_at,omitempty"`
	Records   int            `json:"records,omitempty"`
	ElapsedMs int64          `json:"elapsed_ms,omitempty"`
}

// FileRef identifies one archive stored in a backup store.
type FileRef struct {
	Key       string    `json:"key"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ServerInfo describes what a server build supports and has configured.
type ServerInfo struct {
	Version               string       `json:"version"`
	SnapshotFormatVersion int          `json:"snapshot_format_version"`
	SealedBackups         bool         `json:"sealed_backups"`
	Targets               []SyncTarget `json:"targets"`
}
