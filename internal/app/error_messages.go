// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// expense sync server handlers, middleware and the client CLI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (taken from the JWT subject) but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgDataNotFound is returned when an update targets a record that does
	// not exist for the current user.
	MsgDataNotFound = "data not found"

	// MsgRecordAlreadyExists is returned when a create hits an existing
	// client-generated id. Clients replaying their offline queue treat it
	// as an acknowledgement.
	MsgRecordAlreadyExists = "record already exists"

	// MsgInvalidReference is returned when a write points to a parent record
	// the user does not own.
	MsgInvalidReference = "record references a missing parent"

	// MsgSyncInProgress is returned when a sync or restore for the same user
	// is already running.
	MsgSyncInProgress = "sync or restore already in progress"

	// MsgSyncDeferred is returned when a remote target was unavailable and
	// the sync will be retried later.
	MsgSyncDeferred = "remote target unavailable, sync deferred"

	// MsgMalformedSnapshot is returned when an uploaded archive fails
	// structural validation.
	MsgMalformedSnapshot = "malformed snapshot"

	// MsgUnsupportedSnapshotVersion is returned for archives written by a
	// newer or unknown format version.
	MsgUnsupportedSnapshotVersion = "unsupported snapshot format version"

	// MsgSealedSnapshot is returned for sealed archives when the server has
	// no backup passphrase.
	MsgSealedSnapshot = "snapshot is sealed and no passphrase is configured"

	// MsgInvalidRestoreMode is returned for a mode other than preview,
	// replace or merge.
	MsgInvalidRestoreMode = "invalid restore mode"

	// MsgRestoreFailed is returned when a restore transaction was rolled back.
	MsgRestoreFailed = "restore failed, nothing was applied"

	// MsgBackupNotFound is returned when a stored backup does not exist.
	MsgBackupNotFound = "backup not found"

	// MsgBackupsNotConfigured is returned when backup operations are called
	// on a server without a backup store.
	MsgBackupsNotConfigured = "backups are not configured"

	// MsgNoSyncTarget is returned when a sync requests a target the server
	// does not have configured.
	MsgNoSyncTarget = "no sync target configured"

	// MsgRemoteUnavailable is returned when the backup store or the mirror
	// cannot be reached.
	MsgRemoteUnavailable = "remote store unavailable"

	// MsgIntegrityCheckFailed is returned when the Hash header is missing
	// or does not match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgArchiveTooLarge is returned when an upload exceeds the archive size
	// limit.
	MsgArchiveTooLarge = "archive too large"

	// MsgVersionIsNotSpecified is returned when the build version is unknown.
	MsgVersionIsNotSpecified = "version is not specified"
)
