// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories and remote stores to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrRecordNotFound is returned when an update targets a record
	// (identified by id and user_id) that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrDuplicateRecord is returned when a create hits an identifier that
	// already exists for the user. Replayed client creates land here.
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrInvalidReference is returned when a write references a parent
	// record the user does not own.
	ErrInvalidReference = errors.New("record references a missing parent")

	// ErrUnknownTable is returned for a table without a registered schema.
	ErrUnknownTable = errors.New("unknown table")

	// ErrQueueEntryNotFound is returned when an offline queue entry to be
	// transitioned no longer exists.
	ErrQueueEntryNotFound = errors.New("offline queue entry was not found")
)

// Remote store errors.
var (
	// ErrRemoteUnavailable wraps every transport or remote-side failure of
	// the backup store and the tabular mirror. It is recoverable: the sync
	// is deferred and retried later.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrBackupNotFound is returned when a referenced archive does not exist.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrForeignBackupRef is returned when a backup reference belongs to a
	// different user than the caller.
	ErrForeignBackupRef = errors.New("backup belongs to another user")

	// ErrInvalidBackupName is returned for names that are empty or contain
	// path separators.
	ErrInvalidBackupName = errors.New("invalid backup name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
