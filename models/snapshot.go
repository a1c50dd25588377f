// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SnapshotFormatVersion is the only archive layout version this build can
// read and write.
const SnapshotFormatVersion = 1

// Snapshot is an immutable export of one user's full dataset taken at a
// single logical point in time.
type Snapshot struct {
	FormatVersion int       `json:"format_version"`
	UserID        string    `json:"user_id"`
	ExportedAt    time.Time `json:"exported_at"`
	Dataset       Dataset   `json:"dataset"`
}

// NewSnapshot wraps a materialized dataset read at exportedAt.
func NewSnapshot(userID string, exportedAt time.Time, dataset Dataset) Snapshot {
	return Snapshot{
		FormatVersion: SnapshotFormatVersion,
		UserID:        userID,
		ExportedAt:    NormalizeTime(exportedAt),
		Dataset:       dataset,
	}
}
