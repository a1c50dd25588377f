// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-sync/internal/archive"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/mock"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

// faultyRepository wraps a real repository and hands fn a writer that
// misbehaves after a number of inserts or upserts.
type faultyRepository struct {
	store.DatasetRepository
	failAfter int
	cancel    context.CancelFunc
}

func (f *faultyRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, w store.DatasetWriter) error) error {
	return f.DatasetRepository.RunInTx(ctx, func(ctx context.Context, w store.DatasetWriter) error {
		return fn(ctx, &faultyWriter{DatasetWriter: w, left: f.failAfter, cancel: f.cancel})
	})
}

type faultyWriter struct {
	store.DatasetWriter
	left   int
	cancel context.CancelFunc
}

var errInjected = errors.New("injected write failure")

func (w *faultyWriter) Insert(ctx context.Context, record models.Record) error {
	if err := w.trip(); err != nil {
		return err
	}
	return w.DatasetWriter.Insert(ctx, record)
}

func (w *faultyWriter) Upsert(ctx context.Context, record models.Record) error {
	if err := w.trip(); err != nil {
		return err
	}
	return w.DatasetWriter.Upsert(ctx, record)
}

// trip fails once the budget is spent, or cancels the context instead when
// a cancel func is set.
func (w *faultyWriter) trip() error {
	if w.left > 0 {
		w.left--
		return nil
	}
	if w.cancel != nil {
		w.cancel()
		return nil
	}
	return errInjected
}

func newTestReconciler(t *testing.T) (RestoreReconciler, store.DatasetRepository) {
	t.Helper()
	repo := store.NewDatasetRepository(newTestDB(t))
	return NewRestoreReconciler(repo, logger.Nop()), repo
}

func readDataset(t *testing.T, repo store.DatasetReader, userID string) models.Dataset {
	t.Helper()
	d, err := repo.ReadDataset(context.Background(), userID)
	require.NoError(t, err)
	return d
}

func TestRestoreReconciler_Replace(t *testing.T) {
	reconciler, repo := newTestReconciler(t)
	ctx := context.Background()

	current := testDataset("user-1")
	current.Vehicles = append(current.Vehicles, vehicle("user-1", "vehicle-3", "Sold"))
	current.Expenses = append(current.Expenses, expense("user-1", "expense-3", "vehicle-3", 900))
	seedDataset(t, repo, current)

	snapshot := models.NewSnapshot("user-1", fixtureTime, testDataset("user-1"))

	result, err := reconciler.Restore(ctx, "user-1", models.RestoreReplace, snapshot)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.Applied)
	assert.Equal(t, snapshot.Dataset.Counts(), result.Imported)

	got := readDataset(t, repo, "user-1")
	assert.Equal(t, []string{"vehicle-1", "vehicle-2"}, recordIDs(got, models.TableVehicles))
	assert.Equal(t, []string{"expense-1", "expense-2"}, recordIDs(got, models.TableExpenses))

	for _, summary := range result.Diff {
		switch summary.Table {
		case models.TableVehicles:
			assert.Equal(t, []string{"vehicle-3"}, summary.DeleteIDs)
			assert.Equal(t, 2, summary.Unchanged)
		case models.TableExpenses:
			assert.Equal(t, []string{"expense-3"}, summary.DeleteIDs)
		}
	}
}

func TestRestoreReconciler_Replace_IsIdempotent(t *testing.T) {
	reconciler, repo := newTestReconciler(t)
	ctx := context.Background()
	snapshot := models.NewSnapshot("user-1", fixtureTime, testDataset("user-1"))

	first, err := reconciler.Restore(ctx, "user-1", models.RestoreReplace, snapshot)
	require.NoError(t, err)
	assert.True(t, first.Applied)

	second, err := reconciler.Restore(ctx, "user-1", models.RestoreReplace, snapshot)
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.False(t, second.Applied)
	for _, summary := range second.Diff {
		assert.Zero(t, summary.ToInsert+summary.ToUpdate+summary.ToDelete, "table %s", summary.Table)
	}

	assert.Equal(t, snapshot.Dataset.Total(), readDataset(t, repo, "user-1").Total())
}

func TestRestoreReconciler_EmptyDiffOpensNoTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatasetRepository(ctrl)
	reconciler := NewRestoreReconciler(repo, logger.Nop())
	dataset := testDataset("user-1").OwnedBy("user-1")

	repo.EXPECT().ReadDataset(gomock.Any(), "user-1").Return(dataset, nil).Times(2)

	for _, mode := range []models.RestoreMode{models.RestoreReplace, models.RestoreMerge} {
		result, err := reconciler.Restore(context.Background(), "user-1", mode, models.NewSnapshot("user-1", fixtureTime, dataset))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.Applied)
	}
}

func TestRestoreReconciler_PreviewWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatasetRepository(ctrl)
	reconciler := NewRestoreReconciler(repo, logger.Nop())

	repo.EXPECT().ReadDataset(gomock.Any(), "user-1").Return(models.Dataset{}, nil)

	result, err := reconciler.Restore(context.Background(), "user-1", models.RestorePreview,
		models.NewSnapshot("user-1", fixtureTime, testDataset("user-1")))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Applied)
	assert.Nil(t, result.Imported)
	require.Len(t, result.Diff, len(models.DependencyOrder))
	assert.Equal(t, models.TableSettings, result.Diff[0].Table)
	assert.Equal(t, 2, result.Diff[1].ToInsert)
}

func TestRestoreReconciler_Merge(t *testing.T) {
	reconciler, repo := newTestReconciler(t)
	ctx := context.Background()

	current := models.Dataset{Vehicles: []models.Vehicle{
		vehicle("user-1", "vehicle-1", "Old name"),
		vehicle("user-1", "vehicle-3", "Kept"),
	}}
	seedDataset(t, repo, current)

	snapshot := models.NewSnapshot("user-1", fixtureTime, models.Dataset{
		Vehicles: []models.Vehicle{
			vehicle("user-1", "vehicle-1", "New name"),
			vehicle("user-1", "vehicle-2", "Added"),
		},
		Expenses: []models.Expense{expense("user-1", "expense-1", "vehicle-3", 100)},
	})

	result, err := reconciler.Restore(ctx, "user-1", models.RestoreMerge, snapshot)
	require.Error(t, err, "expense-1 references vehicle-3 which is not part of the snapshot")
	assert.ErrorIs(t, err, archive.ErrMalformedSnapshot)
	assert.False(t, result.Success)

	snapshot.Dataset.Expenses[0].VehicleID = "vehicle-2"
	result, err = reconciler.Restore(ctx, "user-1", models.RestoreMerge, snapshot)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, 2, result.Imported[models.TableVehicles])
	assert.Equal(t, 1, result.Imported[models.TableExpenses])

	got := readDataset(t, repo, "user-1")
	require.Equal(t, []string{"vehicle-1", "vehicle-2", "vehicle-3"}, recordIDs(got, models.TableVehicles))
	assert.Equal(t, "New name", got.Vehicles[0].Name)
	assert.Equal(t, "Kept", got.Vehicles[2].Name)
}

func TestRestoreReconciler_ReownsForeignSnapshot(t *testing.T) {
	reconciler, repo := newTestReconciler(t)

	snapshot := models.NewSnapshot("user-0", fixtureTime, testDataset("user-0"))

	result, err := reconciler.Restore(context.Background(), "user-1", models.RestoreReplace, snapshot)
	require.NoError(t, err)
	assert.True(t, result.Applied)

	got := readDataset(t, repo, "user-1")
	assert.Equal(t, snapshot.Dataset.Total(), got.Total())
	for _, table := range models.DependencyOrder {
		for _, r := range got.Records(table) {
			assert.Equal(t, "user-1", r.Owner())
		}
	}
	assert.Zero(t, readDataset(t, repo, "user-0").Total())
}

func TestRestoreReconciler_Replace_RollsBackOnWriteFailure(t *testing.T) {
	db := newTestDB(t)
	repo := store.NewDatasetRepository(db)
	before := testDataset("user-1")
	before.Vehicles = append(before.Vehicles, vehicle("user-1", "vehicle-3", "Sold"))
	seedDataset(t, repo, before)

	// settings and the first vehicle go in, the second vehicle fails
	reconciler := NewRestoreReconciler(&faultyRepository{DatasetRepository: repo, failAfter: 2}, logger.Nop())

	_, err := reconciler.Restore(context.Background(), "user-1", models.RestoreReplace,
		models.NewSnapshot("user-1", fixtureTime, testDataset("user-1")))
	require.Error(t, err)

	var txErr *RestoreTransactionError
	require.ErrorAs(t, err, &txErr)
	assert.ErrorIs(t, err, ErrRestoreTransaction)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, "insert vehicles", txErr.Reason)
	assert.Equal(t, 3, txErr.RecordsAttempted)

	got := readDataset(t, repo, "user-1")
	assert.Equal(t, []string{"vehicle-1", "vehicle-2", "vehicle-3"}, recordIDs(got, models.TableVehicles))
	assert.Equal(t, before.Total(), got.Total())
}

func TestRestoreReconciler_Merge_RollsBackOnCancel(t *testing.T) {
	db := newTestDB(t)
	repo := store.NewDatasetRepository(db)
	seedDataset(t, repo, models.Dataset{Vehicles: []models.Vehicle{vehicle("user-1", "vehicle-9", "Only")}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reconciler := NewRestoreReconciler(&faultyRepository{DatasetRepository: repo, failAfter: 1, cancel: cancel}, logger.Nop())

	_, err := reconciler.Restore(ctx, "user-1", models.RestoreMerge,
		models.NewSnapshot("user-1", fixtureTime, testDataset("user-1")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoreTransaction)

	got := readDataset(t, repo, "user-1")
	assert.Equal(t, []string{"vehicle-9"}, recordIDs(got, models.TableVehicles))
	assert.Empty(t, got.Settings)
}

func TestRestoreReconciler_InvalidSnapshotNeverReadsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatasetRepository(ctrl)
	reconciler := NewRestoreReconciler(repo, logger.Nop())

	dataset := testDataset("user-1")
	dataset.Vehicles = append(dataset.Vehicles, dataset.Vehicles[0])

	_, err := reconciler.Restore(context.Background(), "user-1", models.RestoreReplace, models.NewSnapshot("user-1", fixtureTime, dataset))
	assert.ErrorIs(t, err, archive.ErrMalformedSnapshot)
	assert.ErrorIs(t, err, models.ErrDuplicateRecordID)

	_, err = reconciler.Restore(context.Background(), "", models.RestoreReplace, models.Snapshot{})
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestRestoreReconciler_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatasetRepository(ctrl)
	reconciler := NewRestoreReconciler(repo, logger.Nop())

	repo.EXPECT().ReadDataset(gomock.Any(), "user-1").Return(models.Dataset{}, store.ErrExecutingQuery)

	_, err := reconciler.Restore(context.Background(), "user-1", models.RestoreMerge, models.NewSnapshot("user-1", fixtureTime, models.Dataset{}))
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
