// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSchema binds a [models.Table] to its SQL columns.
//
// columns lists every column in insert order; keyColumns is the primary
// key, always led by user_id.
type tableSchema struct {
	table      models.Table
	columns    []string
	keyColumns []string
	values     func(r models.Record) []any
	scan       func(s rowScanner) (models.Record, error)
}

var tableSchemas = map[models.Table]tableSchema{
	models.TableSettings: {
		table:      models.TableSettings,
		columns:    []string{"user_id", "currency", "distance_unit", "volume_unit", "updated_at"},
		keyColumns: []string{"user_id"},
		values: func(r models.Record) []any {
			s := r.(models.Settings)
			return []any{s.UserID, s.Currency, s.DistanceUnit, s.VolumeUnit, dbTime(s.UpdatedAt)}
		},
		scan: func(sc rowScanner) (models.Record, error) {
			var s models.Settings
			err := sc.Scan(&s.UserID, &s.Currency, &s.DistanceUnit, &s.VolumeUnit, &s.UpdatedAt)
			s.UpdatedAt = models.NormalizeTime(s.UpdatedAt)
			return s, err
		},
	},
	models.TableVehicles: {
		table: models.TableVehicles,
		columns: []string{"user_id", "id", "name", "make", "model", "year", "license_plate",
			"initial_mileage", "created_at", "updated_at"},
		keyColumns: []string{"user_id", "id"},
		values: func(r models.Record) []any {
			v := r.(models.Vehicle)
			return []any{v.UserID, v.ID, v.Name, v.Make, v.Model, v.Year, v.LicensePlate,
				v.InitialMileage, dbTime(v.CreatedAt), dbTime(v.UpdatedAt)}
		},
		scan: func(sc rowScanner) (models.Record, error) {
			var v models.Vehicle
			err := sc.Scan(&v.UserID, &v.ID, &v.Name, &v.Make, &v.Model, &v.Year, &v.LicensePlate,
				&v.InitialMileage, &v.CreatedAt, &v.UpdatedAt)
			v.CreatedAt, v.UpdatedAt = models.NormalizeTime(v.CreatedAt), models.NormalizeTime(v.UpdatedAt)
			return v, err
		},
	},
	models.TableFinancing: {
		table: models.TableFinancing,
		columns: []string{"user_id", "id", "vehicle_id", "lender", "principal_cents", "rate_basis_points",
			"term_months", "start_date", "created_at", "updated_at"},
		keyColumns: []string{"user_id", "id"},
		values: func(r models.Record) []any {
			f := r.(models.Financing)
			return []any{f.UserID, f.ID, f.VehicleID, f.Lender, f.PrincipalCents, f.RateBasisPts,
				f.TermMonths, dbTime(f.StartDate), dbTime(f.CreatedAt), dbTime(f.UpdatedAt)}
		},
		scan: func(sc rowScanner) (models.Record, error) {
			var f models.Financing
			err := sc.Scan(&f.UserID, &f.ID, &f.VehicleID, &f.Lender, &f.PrincipalCents, &f.RateBasisPts,
				&f.TermMonths, &f.StartDate, &f.CreatedAt, &f.UpdatedAt)
			f.StartDate = models.NormalizeTime(f.StartDate)
			f.CreatedAt, f.UpdatedAt = models.NormalizeTime(f.CreatedAt), models.NormalizeTime(f.UpdatedAt)
			return f, err
		},
	},
	models.TableInsurance: {
		table: models.TableInsurance,
		columns: []string{"user_id", "id", "vehicle_id", "provider", "policy_number", "premium_cents",
			"start_date", "end_date", "created_at", "updated_at"},
		keyColumns: []string{"user_id", "id"},
		values: func(r models.Record) []any {
			i := r.(models.Insurance)
			return []any{i.UserID, i.ID, i.VehicleID, i.Provider, i.PolicyNumber, i.PremiumCents,
				dbTime(i.StartDate), dbOptionalTime(i.EndDate), dbTime(i.CreatedAt), dbTime(i.UpdatedAt)}
		},
		scan: func(sc rowScanner) (models.Record, error) {
			var i models.Insurance
			err := sc.Scan(&i.UserID, &i.ID, &i.VehicleID, &i.Provider, &i.PolicyNumber, &i.PremiumCents,
				&i.StartDate, &i.EndDate, &i.CreatedAt, &i.UpdatedAt)
			i.StartDate = models.NormalizeTime(i.StartDate)
			if i.EndDate != nil {
				end := models.NormalizeTime(*i.EndDate)
				i.EndDate = &end
			}
			i.CreatedAt, i.UpdatedAt = models.NormalizeTime(i.CreatedAt), models.NormalizeTime(i.UpdatedAt)
			return i, err
		},
	},
	models.TableExpenses: {
		table: models.TableExpenses,
		columns: []string{"user_id", "id", "vehicle_id", "category", "amount_cents", "date", "mileage",
			"description", "created_at", "updated_at"},
		keyColumns: []string{"user_id", "id"},
		values: func(r models.Record) []any {
			e := r.(models.Expense)
			return []any{e.UserID, e.ID, e.VehicleID, e.Category, e.AmountCents, dbTime(e.Date), e.Mileage,
				e.Description, dbTime(e.CreatedAt), dbTime(e.UpdatedAt)}
		},
		scan: func(sc rowScanner) (models.Record, error) {
			var e models.Expense
			err := sc.Scan(&e.UserID, &e.ID, &e.VehicleID, &e.Category, &e.AmountCents, &e.Date, &e.Mileage,
				&e.Description, &e.CreatedAt, &e.UpdatedAt)
			e.Date = models.NormalizeTime(e.Date)
			e.CreatedAt, e.UpdatedAt = models.NormalizeTime(e.CreatedAt), models.NormalizeTime(e.UpdatedAt)
			return e, err
		},
	},
}

func schemaFor(t models.Table) (tableSchema, error) {
	schema, ok := tableSchemas[t]
	if !ok {
		return tableSchema{}, fmt.Errorf("%w: %q", ErrUnknownTable, t)
	}
	return schema, nil
}

// valueColumns returns the non-key columns.
func (s tableSchema) valueColumns() []string {
	out := make([]string, 0, len(s.columns)-len(s.keyColumns))
	for _, c := range s.columns {
		if !s.isKey(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s tableSchema) isKey(column string) bool {
	for _, k := range s.keyColumns {
		if k == column {
			return true
		}
	}
	return false
}

// keyOrder is the ORDER BY clause giving a stable read order.
func (s tableSchema) keyOrder() string {
	return strings.Join(s.keyColumns, ", ")
}

// upsertSuffix is the ON CONFLICT clause shared by PostgreSQL and SQLite.
func (s tableSchema) upsertSuffix() string {
	sets := make([]string, 0, len(s.columns))
	for _, c := range s.valueColumns() {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	return "ON CONFLICT (" + strings.Join(s.keyColumns, ", ") + ") DO UPDATE SET " + strings.Join(sets, ", ")
}

// dbTime stores timestamps as UTC at the precision both drivers round-trip.
func dbTime(t time.Time) time.Time {
	return models.NormalizeTime(t)
}

func dbOptionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return dbTime(*t)
}
