// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

var fixtureTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// newTestDB opens a migrated server database in a temp dir.
func newTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "server.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

// vehicle returns a minimal vehicle owned by userID.
func vehicle(userID, id, name string) models.Vehicle {
	return models.Vehicle{
		ID: id, UserID: userID, Name: name, Make: "Skoda", Model: "Octavia", Year: 2019,
		InitialMileage: 42000, CreatedAt: fixtureTime, UpdatedAt: fixtureTime,
	}
}

func expense(userID, id, vehicleID string, cents int64) models.Expense {
	return models.Expense{
		ID: id, UserID: userID, VehicleID: vehicleID, Category: "fuel", AmountCents: cents,
		Date: day(2026, 2, 14), CreatedAt: fixtureTime, UpdatedAt: fixtureTime,
	}
}

// testDataset returns settings, two vehicles, one financing, one insurance
// and two expenses owned by userID.
func testDataset(userID string) models.Dataset {
	return models.Dataset{
		Settings: []models.Settings{
			{UserID: userID, Currency: "EUR", DistanceUnit: "km", VolumeUnit: "l", UpdatedAt: fixtureTime},
		},
		Vehicles: []models.Vehicle{
			vehicle(userID, "vehicle-1", "Daily"),
			vehicle(userID, "vehicle-2", "Weekend"),
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
			expense(userID, "expense-1", "vehicle-1", 6543),
			expense(userID, "expense-2", "vehicle-2", 23000),
		},
	}
}

// seedDataset inserts d in dependency order in one transaction.
func seedDataset(t *testing.T, repo store.DatasetRepository, d models.Dataset) {
	t.Helper()
	err := repo.RunInTx(context.Background(), func(ctx context.Context, w store.DatasetWriter) error {
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

func recordIDs(d models.Dataset, table models.Table) []string {
	var ids []string
	for _, r := range d.Records(table) {
		ids = append(ids, r.RecordID())
	}
	return ids
}
