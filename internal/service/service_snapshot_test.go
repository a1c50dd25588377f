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

	"github.com/MKhiriev/go-expense-sync/internal/archive"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/mock"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

func TestSnapshotService_Export_TakesInstantBeforeRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockDatasetReader(ctrl)

	svc := NewSnapshotService(reader, archive.NewCodec(), logger.Nop()).(*snapshotService)
	clock := fixtureTime
	svc.now = func() time.Time { return clock }

	reader.EXPECT().ReadDataset(gomock.Any(), "user-1").
		DoAndReturn(func(context.Context, string) (models.Dataset, error) {
			// a write racing with the export lands after the export instant
			clock = clock.Add(time.Second)
			return testDataset("user-1"), nil
		})

	snapshot, data, err := svc.Export(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, fixtureTime, snapshot.ExportedAt)
	assert.Equal(t, models.SnapshotFormatVersion, snapshot.FormatVersion)
	assert.Equal(t, "user-1", snapshot.UserID)
	assert.NotEmpty(t, data)

	decoded, err := svc.Decode(data)
	require.NoError(t, err)
	assert.True(t, snapshot.ExportedAt.Equal(decoded.ExportedAt))
	assert.Equal(t, snapshot.Dataset.Counts(), decoded.Dataset.Counts())
}

func TestSnapshotService_Export_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockDatasetReader(ctrl)
	codec := mock.NewMockSnapshotCodec(ctrl)
	svc := NewSnapshotService(reader, codec, logger.Nop())
	ctx := context.Background()

	reader.EXPECT().ReadDataset(gomock.Any(), "user-1").Return(models.Dataset{}, store.ErrScanningRows)
	_, _, err := svc.Export(ctx, "user-1")
	assert.ErrorIs(t, err, store.ErrScanningRows)

	encodeErr := errors.New("boom")
	reader.EXPECT().ReadDataset(gomock.Any(), "user-1").Return(testDataset("user-1"), nil)
	codec.EXPECT().Encode(gomock.Any()).Return(nil, encodeErr)
	_, _, err = svc.Export(ctx, "user-1")
	assert.ErrorIs(t, err, encodeErr)
}

func TestSnapshotService_ExportFromStorage(t *testing.T) {
	repo := store.NewDatasetRepository(newTestDB(t))
	seedDataset(t, repo, testDataset("user-1"))

	svc := NewSnapshotService(repo, archive.NewCodec(), logger.Nop())

	snapshot, data, err := svc.Export(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, testDataset("user-1").Total(), snapshot.Dataset.Total())

	decoded, err := archive.Decode(data)
	require.NoError(t, err)
	for _, table := range models.DependencyOrder {
		assert.Equal(t, recordIDs(snapshot.Dataset, table), recordIDs(decoded.Dataset, table), "table %s", table)
	}
}
