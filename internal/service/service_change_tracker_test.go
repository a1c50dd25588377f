// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/mock"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

func newTestChangeTracker(t *testing.T) (*changeTracker, *mock.MockChangeStateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockChangeStateRepository(ctrl)
	tracker := NewChangeTracker(repo, logger.Nop()).(*changeTracker)
	tracker.now = func() time.Time { return fixtureTime.Add(123 * time.Nanosecond) }
	return tracker, repo
}

func TestChangeTracker_MarkDataChanged_NormalizesTime(t *testing.T) {
	tracker, repo := newTestChangeTracker(t)
	ctx := context.Background()

	repo.EXPECT().SetLastDataChange(ctx, "user-1", fixtureTime).Return(nil)

	require.NoError(t, tracker.MarkDataChanged(ctx, "user-1"))
}

func TestChangeTracker_HasChangesSinceLastSync(t *testing.T) {
	earlier, later := fixtureTime, fixtureTime.Add(time.Minute)

	tests := []struct {
		name  string
		state models.ChangeState
		err   error
		want  bool
	}{
		{name: "no state yet", state: models.ChangeState{UserID: "user-1"}, want: true},
		{name: "changed, never synced", state: models.ChangeState{UserID: "user-1", LastDataChangeDate: &earlier}, want: true},
		{name: "changed after sync", state: models.ChangeState{UserID: "user-1", LastDataChangeDate: &later, LastSyncDate: &earlier}, want: true},
		{name: "synced after change", state: models.ChangeState{UserID: "user-1", LastDataChangeDate: &earlier, LastSyncDate: &later}, want: false},
		{name: "read error fails open", err: errors.New("database is locked"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, repo := newTestChangeTracker(t)
			repo.EXPECT().Get(gomock.Any(), "user-1").Return(tt.state, tt.err)

			assert.Equal(t, tt.want, tracker.HasChangesSinceLastSync(context.Background(), "user-1"))
		})
	}
}

func TestChangeTracker_GetChangeStatus(t *testing.T) {
	tracker, repo := newTestChangeTracker(t)
	changed := fixtureTime

	repo.EXPECT().Get(gomock.Any(), "user-1").
		Return(models.ChangeState{UserID: "user-1", LastDataChangeDate: &changed}, nil)

	status, err := tracker.GetChangeStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, status.HasChangesSinceLastSync)
	assert.Nil(t, status.LastSyncDate)
}

func TestChangeTracker_GetChangeStatus_Error(t *testing.T) {
	tracker, repo := newTestChangeTracker(t)
	repo.EXPECT().Get(gomock.Any(), "user-1").Return(models.ChangeState{}, store.ErrExecutingQuery)

	_, err := tracker.GetChangeStatus(context.Background(), "user-1")
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestChangeTracker_MarkSyncedAndDelete(t *testing.T) {
	tracker, repo := newTestChangeTracker(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().SetLastSync(ctx, "user-1", fixtureTime).Return(nil),
		repo.EXPECT().Delete(ctx, "user-1").Return(nil),
	)

	require.NoError(t, tracker.MarkSynced(ctx, "user-1", fixtureTime.Add(999*time.Nanosecond)))
	require.NoError(t, tracker.DeleteChangeState(ctx, "user-1"))
}
