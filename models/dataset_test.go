// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func sampleDataset(owner string) Dataset {
	mileage := int64(120500)
	return Dataset{
		Settings: []Settings{{UserID: owner, Currency: "USD", DistanceUnit: "mi", VolumeUnit: "gal", UpdatedAt: baseTime}},
		Vehicles: []Vehicle{
			{ID: "vehicle-1", UserID: owner, Name: "Daily", Make: "Honda", Model: "Civic", Year: 2019, CreatedAt: baseTime, UpdatedAt: baseTime},
			{ID: "vehicle-2", UserID: owner, Name: "Truck", Make: "Ford", Model: "F-150", Year: 2021, CreatedAt: baseTime, UpdatedAt: baseTime},
		},
		Financing: []Financing{
			{ID: "fin-1", UserID: owner, VehicleID: "vehicle-2", Lender: "Bank", PrincipalCents: 2500000, RateBasisPts: 499, TermMonths: 60, StartDate: baseTime, CreatedAt: baseTime, UpdatedAt: baseTime},
		},
		Insurance: []Insurance{
			{ID: "ins-1", UserID: owner, VehicleID: "vehicle-1", Provider: "Acme", PolicyNumber: "P-1", PremiumCents: 90000, StartDate: baseTime, CreatedAt: baseTime, UpdatedAt: baseTime},
		},
		Expenses: []Expense{
			{ID: "expense-1", UserID: owner, VehicleID: "vehicle-1", Category: "fuel", AmountCents: 4210, Date: baseTime, Mileage: &mileage, CreatedAt: baseTime, UpdatedAt: baseTime},
			{ID: "expense-2", UserID: owner, VehicleID: "vehicle-2", Category: "service", AmountCents: 18999, Date: baseTime, CreatedAt: baseTime, UpdatedAt: baseTime},
		},
	}
}

func TestDataset_Counts(t *testing.T) {
	ds := sampleDataset("u1")

	assert.Equal(t, map[Table]int{
		TableSettings:  1,
		TableVehicles:  2,
		TableFinancing: 1,
		TableInsurance: 1,
		TableExpenses:  2,
	}, ds.Counts())
	assert.Equal(t, 7, ds.Total())
}

func TestDataset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(ds *Dataset) {},
		},
		{
			name:    "dangling vehicle reference",
			mutate:  func(ds *Dataset) { ds.Expenses[0].VehicleID = "vehicle-404" },
			wantErr: ErrDanglingReference,
		},
		{
			name:    "duplicate id",
			mutate:  func(ds *Dataset) { ds.Vehicles[1].ID = "vehicle-1" },
			wantErr: ErrDuplicateRecordID,
		},
		{
			name:    "empty id",
			mutate:  func(ds *Dataset) { ds.Insurance[0].ID = "" },
			wantErr: ErrEmptyRecordID,
		},
		{
			name:    "record of another user",
			mutate:  func(ds *Dataset) { ds.Financing[0].UserID = "u2" },
			wantErr: ErrForeignOwner,
		},
		{
			name: "two settings rows",
			mutate: func(ds *Dataset) {
				ds.Settings = append(ds.Settings, ds.Settings[0])
			},
			wantErr: ErrDuplicateRecordID,
		},
		{
			name: "children listed before parents are still valid",
			mutate: func(ds *Dataset) {
				ds.Vehicles[0], ds.Vehicles[1] = ds.Vehicles[1], ds.Vehicles[0]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := sampleDataset("u1")
			tt.mutate(&ds)

			err := ds.Validate("u1")
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDataset_OwnedBy(t *testing.T) {
	ds := sampleDataset("u1")
	ds.Vehicles[0].CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 999, time.FixedZone("X", 3600))

	owned := ds.OwnedBy("u2")

	require.NoError(t, owned.Validate("u2"))
	assert.Equal(t, "u2", owned.Settings[0].RecordID())
	assert.Equal(t, time.UTC, owned.Vehicles[0].CreatedAt.Location())
	assert.Zero(t, owned.Vehicles[0].CreatedAt.Nanosecond())
	// source is untouched
	assert.Equal(t, "u1", ds.Vehicles[0].UserID)
}

func TestDataset_AppendPanicsOnUnknownRecord(t *testing.T) {
	var ds Dataset
	assert.Panics(t, func() { ds.Append(nil) })
}

func TestReown(t *testing.T) {
	at := time.Date(2026, 4, 2, 8, 0, 0, 1500, time.FixedZone("CET", 3600))
	e := Expense{ID: "e-1", UserID: "alice", VehicleID: "v-1", Date: at, CreatedAt: at, UpdatedAt: at}

	got := Reown(e, "bob").(Expense)

	assert.Equal(t, "bob", got.UserID)
	assert.Equal(t, "e-1", got.ID)
	assert.Equal(t, time.UTC, got.UpdatedAt.Location())
	assert.Equal(t, 1000, got.UpdatedAt.Nanosecond())
	assert.Equal(t, "alice", e.UserID)
}
