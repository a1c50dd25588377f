// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/models"
)

func TestDatasetRepository_ReadEmpty(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))

	got, err := repo.ReadDataset(testContext(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, got.Total())
}

func TestDatasetRepository_InsertAndRead(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))
	want := fixtureDataset("user-1")

	seed(t, repo, want)

	got, err := repo.ReadDataset(testContext(), "user-1")
	require.NoError(t, err)
	requireSameDataset(t, want, got)

	// nullable columns survive the round trip
	require.NotNil(t, got.Insurance[0].EndDate)
	assert.True(t, got.Insurance[0].EndDate.Equal(day(2026, 12, 31)))
	require.NotNil(t, got.Expenses[0].Mileage)
	assert.Equal(t, int64(45210), *got.Expenses[0].Mileage)
	assert.Nil(t, got.Expenses[1].Mileage)
}

func TestDatasetRepository_UsersAreIsolated(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))

	// same record ids under two owners
	seed(t, repo, fixtureDataset("user-1"))
	seed(t, repo, fixtureDataset("user-2"))

	got, err := repo.ReadDataset(testContext(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, fixtureDataset("user-2").Counts(), got.Counts())
	for _, table := range models.DependencyOrder {
		for _, r := range got.Records(table) {
			assert.Equal(t, "user-2", r.Owner())
		}
	}
}

func TestDatasetRepository_RunInTx_RollsBackOnError(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))
	seed(t, repo, fixtureDataset("user-1"))

	boom := errors.New("boom")
	err := repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
		for _, table := range models.DeleteOrder() {
			if _, err := w.DeleteAll(ctx, table, "user-1"); err != nil {
				return err
			}
		}
		// deleted inside the transaction
		inside, err := w.ReadDataset(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, inside.Total())
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.ReadDataset(testContext(), "user-1")
	require.NoError(t, err)
	requireSameDataset(t, fixtureDataset("user-1"), got)
}

func TestDatasetRepository_RunInTx_RollsBackOnPanic(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))
	seed(t, repo, fixtureDataset("user-1"))

	assert.Panics(t, func() {
		_ = repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
			_, _ = w.DeleteAll(ctx, models.TableExpenses, "user-1")
			panic("writer crashed")
		})
	})

	got, err := repo.ReadDataset(testContext(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got.Expenses, 2)
}

func TestDatasetRepository_RunInTx_CancelledContext(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	err := repo.RunInTx(ctx, func(ctx context.Context, w DatasetWriter) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestDatasetWriter_DeleteAllCounts(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))
	seed(t, repo, fixtureDataset("user-1"))

	deleted := map[models.Table]int64{}
	err := repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
		for _, table := range models.DeleteOrder() {
			n, err := w.DeleteAll(ctx, table, "user-1")
			if err != nil {
				return err
			}
			deleted[table] = n
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[models.Table]int64{
		models.TableSettings:  1,
		models.TableVehicles:  2,
		models.TableFinancing: 1,
		models.TableInsurance: 1,
		models.TableExpenses:  2,
	}, deleted)
}

func TestDatasetWriter_InsertDanglingReference(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))

	err := repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
		return w.Insert(ctx, models.Expense{
			ID: "expense-9", UserID: "user-1", VehicleID: "missing", Category: "fuel",
			Date: fixtureTime, CreatedAt: fixtureTime, UpdatedAt: fixtureTime,
		})
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestDatasetWriter_InsertDuplicate(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))
	seed(t, repo, fixtureDataset("user-1"))

	err := repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
		return w.Insert(ctx, fixtureDataset("user-1").Vehicles[0])
	})
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestDatasetWriter_Upsert(t *testing.T) {
	repo := NewDatasetRepository(newSQLiteDB(t))
	seed(t, repo, fixtureDataset("user-1"))

	changed := fixtureDataset("user-1").Vehicles[0]
	changed.Name = "Renamed"
	added := models.Vehicle{ID: "vehicle-3", UserID: "user-1", Name: "New", CreatedAt: fixtureTime, UpdatedAt: fixtureTime}

	err := repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
		if err := w.Upsert(ctx, changed); err != nil {
			return err
		}
		return w.Upsert(ctx, added)
	})
	require.NoError(t, err)

	got, err := repo.ReadDataset(testContext(), "user-1")
	require.NoError(t, err)
	require.Len(t, got.Vehicles, 3)
	assert.Equal(t, "Renamed", got.Vehicles[0].Name)
	assert.Equal(t, "vehicle-3", got.Vehicles[2].ID)
	// children untouched
	assert.Len(t, got.Expenses, 2)
}

func TestDatasetRepository_ReadDataset_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDatasetRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT user_id, currency, distance_unit, volume_unit, updated_at FROM settings WHERE user_id = \$1 ORDER BY user_id`).
		WithArgs("user-1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.ReadDataset(testContext(), "user-1")
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableSchema_UpsertSuffix(t *testing.T) {
	schema, err := schemaFor(models.TableSettings)
	require.NoError(t, err)
	assert.Equal(t,
		"ON CONFLICT (user_id) DO UPDATE SET currency = EXCLUDED.currency, distance_unit = EXCLUDED.distance_unit, "+
			"volume_unit = EXCLUDED.volume_unit, updated_at = EXCLUDED.updated_at",
		schema.upsertSuffix())

	_, err = schemaFor("trips")
	assert.ErrorIs(t, err, ErrUnknownTable)
}
