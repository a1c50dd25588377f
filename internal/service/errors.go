// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrConcurrentSync is returned when a sync or restore for the same user
	// already holds the single-flight token.
	ErrConcurrentSync = errors.New("sync or restore already in progress for user")

	// ErrNoSyncTarget is returned when no remote target is configured or
	// every requested target is unconfigured.
	ErrNoSyncTarget = errors.New("no sync target configured")

	// ErrBackupsNotConfigured is returned by backup operations on a server
	// without a backup store.
	ErrBackupsNotConfigured = errors.New("backups are not configured")

	// ErrInvalidMutation wraps every validation failure of a client mutation.
	ErrInvalidMutation = errors.New("invalid mutation")

	// ErrRestoreTransaction is matched by every [RestoreTransactionError].
	ErrRestoreTransaction = errors.New("restore transaction failed")

	// ErrReplayInProgress is returned when Replay is called while another
	// replay is running.
	ErrReplayInProgress = errors.New("offline queue replay already in progress")

	// ErrInvalidUserID is returned when an operation is called without a user.
	ErrInvalidUserID = errors.New("user id is required")
)

// RestoreTransactionError reports a rolled back restore. Nothing of the
// snapshot was applied.
type RestoreTransactionError struct {
	// Reason is a short label of the failed step.
	Reason string
	// RecordsAttempted counts the writes issued before the failure.
	RecordsAttempted int
	Err              error
}

func (e *RestoreTransactionError) Error() string {
	return fmt.Sprintf("%s: %s after %d records: %v", ErrRestoreTransaction, e.Reason, e.RecordsAttempted, e.Err)
}

func (e *RestoreTransactionError) Unwrap() error {
	return e.Err
}

func (e *RestoreTransactionError) Is(target error) bool {
	return target == ErrRestoreTransaction
}
