// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

type clientSyncService struct {
	queue         store.OfflineMutationRepository
	serverAdapter adapter.ServerAdapter
}

// NewClientSyncService creates the client facade over the sync endpoints.
func NewClientSyncService(queue store.OfflineMutationRepository, serverAdapter adapter.ServerAdapter) ClientSyncService {
	return &clientSyncService{
		queue:         queue,
		serverAdapter: serverAdapter,
	}
}

// Status implements ClientSyncService. The queue depth is local and is
// reported even when the server call fails.
func (c *clientSyncService) Status(ctx context.Context) (ClientStatus, error) {
	var status ClientStatus

	pending, err := c.queue.ListPending(ctx)
	if err != nil {
		return status, err
	}
	status.Pending = len(pending)

	status.Server, err = c.serverAdapter.SyncStatus(ctx)
	return status, err
}

func (c *clientSyncService) TriggerSync(ctx context.Context, req models.SyncRequest) (models.SyncResult, error) {
	return c.serverAdapter.TriggerSync(ctx, req)
}

func (c *clientSyncService) Download(ctx context.Context) ([]byte, string, error) {
	return c.serverAdapter.Download(ctx)
}

func (c *clientSyncService) Restore(ctx context.Context, archive []byte, mode models.RestoreMode) (models.RestoreResult, error) {
	return c.serverAdapter.UploadBackup(ctx, archive, mode)
}

func (c *clientSyncService) ListBackups(ctx context.Context) ([]models.FileRef, error) {
	return c.serverAdapter.ListBackups(ctx)
}

func (c *clientSyncService) RestoreStored(ctx context.Context, name string, mode models.RestoreMode) (models.RestoreResult, error) {
	return c.serverAdapter.RestoreStored(ctx, name, mode)
}
