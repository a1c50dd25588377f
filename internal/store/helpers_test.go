// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newSQLiteDB opens a migrated server database in a temp dir.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(testContext(), filepath.Join(t.TempDir(), "server.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

// newClientSQLiteDB opens a migrated client database in a temp dir.
func newClientSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(testContext(), filepath.Join(t.TempDir(), "client.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateClient())
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

var fixtureTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// fixtureDataset returns two vehicles, one financing, one insurance and
// two expenses owned by userID.
func fixtureDataset(userID string) models.Dataset {
	return models.Dataset{
		Settings: []models.Settings{
			{UserID: userID, Currency: "EUR", DistanceUnit: "km", VolumeUnit: "l", UpdatedAt: fixtureTime},
		},
		Vehicles: []models.Vehicle{
			{ID: "vehicle-1", UserID: userID, Name: "Daily", Make: "Skoda", Model: "Octavia", Year: 2019,
				LicensePlate: "AB-123", InitialMileage: 42000, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
			{ID: "vehicle-2", UserID: userID, Name: "Weekend", Make: "Mazda", Model: "MX-5", Year: 2008,
				LicensePlate: "CD-456", InitialMileage: 98000, CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		},
		Financing: []models.Financing{
			{ID: "fin-1", UserID: userID, VehicleID: "vehicle-1", Lender: "City Bank", PrincipalCents: 1500000,
				RateBasisPts: 425, TermMonths: 48, StartDate: day(2025, 6, 1), CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		},
		Insurance: []models.Insurance{
			{ID: "ins-1", UserID: userID, VehicleID: "vehicle-2", Provider: "Allianz", PolicyNumber: "POL-9",
				PremiumCents: 48000, StartDate: day(2026, 1, 1), EndDate: ptr(day(2026, 12, 31)),
				CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		},
		Expenses: []models.Expense{
			{ID: "expense-1", UserID: userID, VehicleID: "vehicle-1", Category: "fuel", AmountCents: 6543,
				Date: day(2026, 2, 14), Mileage: ptr(int64(45210)), Description: "Full tank",
				CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
			{ID: "expense-2", UserID: userID, VehicleID: "vehicle-2", Category: "service", AmountCents: 23000,
				Date: day(2026, 2, 20), Description: "Oil change, filters",
				CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		},
	}
}

// seed inserts d in dependency order in one transaction.
func seed(t *testing.T, repo DatasetRepository, d models.Dataset) {
	t.Helper()
	err := repo.RunInTx(testContext(), func(ctx context.Context, w DatasetWriter) error {
		for _, table := range models.DependencyOrder {
			for _, r := range d.Records(table) {
				if err := w.Insert(ctx, r); err != nil {
					return err
				}
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// requireSameDataset asserts that both datasets hold the same records in
// the same order.
func requireSameDataset(t *testing.T, want, got models.Dataset) {
	t.Helper()
	for _, table := range models.DependencyOrder {
		w, g := want.Records(table), got.Records(table)
		require.Len(t, g, len(w), "table %s", table)
		for i := range w {
			require.Truef(t, w[i].SameAs(g[i]), "table %s record %d: want %+v, got %+v", table, i, w[i], g[i])
		}
	}
}

func sqlmockResult(rows int64) driver.Result {
	return sqlmock.NewResult(0, rows)
}
