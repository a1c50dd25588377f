// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChangeStateRepository persists one [models.ChangeState] row per user.
type ChangeStateRepository interface {
	// Get returns the state of userID. A user without a row gets a state
	// with both timestamps absent.
	Get(ctx context.Context, userID string) (models.ChangeState, error)
	SetLastDataChange(ctx context.Context, userID string, at time.Time) error
	SetLastSync(ctx context.Context, userID string, at time.Time) error
	// SetLastSyncAttempt stores when a background sync of userID was last
	// started, whatever its outcome.
	SetLastSyncAttempt(ctx context.Context, userID string, at time.Time) error
	// ListDirty returns users whose data changed after their last sync and
	// not later than idleBefore (or whose change date is unknown), least
	// recently attempted first.
	ListDirty(ctx context.Context, idleBefore time.Time, limit int) ([]string, error)
	Delete(ctx context.Context, userID string) error
}

// DatasetReader reads every table of one user.
type DatasetReader interface {
	ReadDataset(ctx context.Context, userID string) (models.Dataset, error)
}

// DatasetWriter is the transactional handle passed to [DatasetRepository.RunInTx].
type DatasetWriter interface {
	DatasetReader
	// DeleteAll removes every row of table owned by userID and returns the
	// number of rows removed.
	DeleteAll(ctx context.Context, table models.Table, userID string) (int64, error)
	Insert(ctx context.Context, record models.Record) error
	Upsert(ctx context.Context, record models.Record) error
}

// DatasetRepository reads whole datasets in one consistent transaction and
// applies restores atomically.
type DatasetRepository interface {
	DatasetReader
	// RunInTx runs fn inside one read-write transaction. Any error returned
	// by fn, a panic or a cancelled ctx rolls everything back.
	RunInTx(ctx context.Context, fn func(ctx context.Context, w DatasetWriter) error) error
}

// EntityRepository applies single-record client mutations.
type EntityRepository interface {
	// Create inserts record with its client-generated id. An existing id
	// yields [ErrDuplicateRecord].
	Create(ctx context.Context, record models.Record) error
	// Update replaces the fields of an existing record, [ErrRecordNotFound]
	// when absent.
	Update(ctx context.Context, record models.Record) error
	// Delete removes a record; deleting a missing record is not an error.
	Delete(ctx context.Context, table models.Table, userID, id string) error
}

// BackupStore is a remote blob store for snapshot archives. Every remote
// failure is wrapped with [ErrRemoteUnavailable].
type BackupStore interface {
	Upload(ctx context.Context, userID, name string, data []byte) (models.FileRef, error)
	// List returns the archives of userID, newest first.
	List(ctx context.Context, userID string) ([]models.FileRef, error)
	Fetch(ctx context.Context, ref models.FileRef) ([]byte, error)
	Delete(ctx context.Context, ref models.FileRef) error
}

// SheetSink stores the rendered sheets of the tabular mirror.
type SheetSink interface {
	PutSheet(ctx context.Context, userID, sheet string, data []byte) error
}

// TabularMirror projects a snapshot into a spreadsheet-like representation
// for human inspection. Best-effort and not authoritative.
type TabularMirror interface {
	Write(ctx context.Context, userID string, snapshot models.Snapshot) error
}

// OfflineMutationRepository is the client-side FIFO of mutations written
// while the server was unreachable.
type OfflineMutationRepository interface {
	// Append stores entry as pending and returns it with its sequence number.
	Append(ctx context.Context, entry models.OfflineMutation) (models.OfflineMutation, error)
	// ListPending returns pending entries in sequence order.
	ListPending(ctx context.Context) ([]models.OfflineMutation, error)
	// List returns every entry in sequence order.
	List(ctx context.Context) ([]models.OfflineMutation, error)
	MarkSynced(ctx context.Context, seq int64) error
	RecordAttempt(ctx context.Context, seq int64, lastError string) error
	// PurgeSynced deletes acknowledged entries.
	PurgeSynced(ctx context.Context) (int64, error)
}
