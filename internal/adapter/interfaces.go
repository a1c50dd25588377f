// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the expense sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrDuplicate] for a replayed create, [ErrNetworkUnavailable]
// when the server cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-expense-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations attach the bearer token and the body integrity
// hash and map transport failures onto the sentinels of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Ping probes connectivity. It returns [ErrNetworkUnavailable] (wrapped)
	// when the server cannot be reached.
	Ping(ctx context.Context) error

	// ApplyMutation sends one client write. A create whose id already exists
	// on the server yields [ErrDuplicate].
	ApplyMutation(ctx context.Context, mutation models.Mutation) error

	// SyncStatus returns the change status of the authenticated user.
	SyncStatus(ctx context.Context) (models.ChangeStatus, error)

	// TriggerSync asks the server to sync. Unless req.Force is set the server
	// skips when nothing changed.
	TriggerSync(ctx context.Context, req models.SyncRequest) (models.SyncResult, error)

	// UploadBackup sends an archive to be restored with mode.
	UploadBackup(ctx context.Context, archive []byte, mode models.RestoreMode) (models.RestoreResult, error)

	// Download fetches a freshly exported archive and its file name.
	Download(ctx context.Context) ([]byte, string, error)

	// ListBackups lists the stored archives, newest first.
	ListBackups(ctx context.Context) ([]models.FileRef, error)

	// RestoreStored restores the stored archive called name.
	RestoreStored(ctx context.Context, name string, mode models.RestoreMode) (models.RestoreResult, error)
}
