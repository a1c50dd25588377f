// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/mock"
	"github.com/MKhiriev/go-expense-sync/models"
)

func newTestClientSync(t *testing.T) (ClientSyncService, *mock.MockOfflineMutationRepository, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOfflineMutationRepository(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientSyncService(repo, serverAdapter), repo, serverAdapter
}

func TestClientSyncService_Status(t *testing.T) {
	svc, repo, serverAdapter := newTestClientSync(t)
	ctx := context.Background()
	server := models.ChangeStatus{HasChangesSinceLastSync: true}

	repo.EXPECT().ListPending(ctx).Return([]models.OfflineMutation{{Seq: 1}, {Seq: 2}}, nil)
	serverAdapter.EXPECT().SyncStatus(ctx).Return(server, nil)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, ClientStatus{Server: server, Pending: 2}, status)
}

func TestClientSyncService_Status_OfflineKeepsQueueDepth(t *testing.T) {
	svc, repo, serverAdapter := newTestClientSync(t)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx).Return([]models.OfflineMutation{{Seq: 1}}, nil)
	serverAdapter.EXPECT().SyncStatus(ctx).Return(models.ChangeStatus{}, adapter.ErrNetworkUnavailable)

	status, err := svc.Status(ctx)
	assert.ErrorIs(t, err, adapter.ErrNetworkUnavailable)
	assert.Equal(t, 1, status.Pending)
}

func TestClientSyncService_Delegates(t *testing.T) {
	svc, _, serverAdapter := newTestClientSync(t)
	ctx := context.Background()
	req := models.SyncRequest{Force: true}
	refs := []models.FileRef{{Name: "a.tar.gz"}}
	restored := models.RestoreResult{Mode: models.RestoreMerge, Success: true, Applied: true}

	serverAdapter.EXPECT().TriggerSync(ctx, req).Return(models.SyncResult{Synced: true}, nil)
	serverAdapter.EXPECT().Download(ctx).Return([]byte("archive"), "snapshot.tar.gz", nil)
	serverAdapter.EXPECT().UploadBackup(ctx, []byte("archive"), models.RestorePreview).Return(models.RestoreResult{Mode: models.RestorePreview, Success: true}, nil)
	serverAdapter.EXPECT().ListBackups(ctx).Return(refs, nil)
	serverAdapter.EXPECT().RestoreStored(ctx, "a.tar.gz", models.RestoreMerge).Return(restored, nil)

	result, err := svc.TriggerSync(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Synced)

	data, name, err := svc.Download(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("archive"), data)
	assert.Equal(t, "snapshot.tar.gz", name)

	preview, err := svc.Restore(ctx, data, models.RestorePreview)
	require.NoError(t, err)
	assert.False(t, preview.Applied)

	list, err := svc.ListBackups(ctx)
	require.NoError(t, err)
	assert.Equal(t, refs, list)

	got, err := svc.RestoreStored(ctx, "a.tar.gz", models.RestoreMerge)
	require.NoError(t, err)
	assert.Equal(t, restored, got)
}
