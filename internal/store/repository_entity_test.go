// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/models"
)

func TestEntityRepository_CreateDuplicate(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntityRepository(db)
	ctx := testContext()

	vehicle := fixtureDataset("user-1").Vehicles[0]
	require.NoError(t, repo.Create(ctx, vehicle))

	err := repo.Create(ctx, vehicle)
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestEntityRepository_CreateMissingParent(t *testing.T) {
	repo := NewEntityRepository(newSQLiteDB(t))

	err := repo.Create(testContext(), fixtureDataset("user-1").Expenses[0])
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestEntityRepository_Update(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntityRepository(db)
	ctx := testContext()
	seed(t, NewDatasetRepository(db), fixtureDataset("user-1"))

	expense := fixtureDataset("user-1").Expenses[1]
	expense.AmountCents = 25000
	expense.Mileage = ptr(int64(46000))
	require.NoError(t, repo.Update(ctx, expense))

	got, err := NewDatasetRepository(db).ReadDataset(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, expense.SameAs(got.Expenses[1]))

	settings := fixtureDataset("user-1").Settings[0]
	settings.Currency = "USD"
	require.NoError(t, repo.Update(ctx, settings))
}

func TestEntityRepository_UpdateMissing(t *testing.T) {
	repo := NewEntityRepository(newSQLiteDB(t))

	err := repo.Update(testContext(), fixtureDataset("user-1").Vehicles[0])
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestEntityRepository_UpdateOtherUsersRecord(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntityRepository(db)
	seed(t, NewDatasetRepository(db), fixtureDataset("user-1"))

	vehicle := fixtureDataset("user-1").Vehicles[0]
	vehicle.UserID = "user-2"

	err := repo.Update(testContext(), vehicle)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestEntityRepository_DeleteIsIdempotentAndCascades(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntityRepository(db)
	ctx := testContext()
	seed(t, NewDatasetRepository(db), fixtureDataset("user-1"))

	require.NoError(t, repo.Delete(ctx, models.TableVehicles, "user-1", "vehicle-1"))
	require.NoError(t, repo.Delete(ctx, models.TableVehicles, "user-1", "vehicle-1"))

	got, err := NewDatasetRepository(db).ReadDataset(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, got.Vehicles, 1)
	assert.Empty(t, got.Financing)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "expense-2", got.Expenses[0].ID)
}

func TestEntityRepository_UnknownTable(t *testing.T) {
	repo := NewEntityRepository(newSQLiteDB(t))

	err := repo.Delete(testContext(), "trips", "user-1", "x")
	assert.ErrorIs(t, err, ErrUnknownTable)
}
