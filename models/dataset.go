// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Dataset holds every record owned by one user, typed per table.
// Settings holds at most one element.
type Dataset struct {
	Settings  []Settings  `json:"settings"`
	Vehicles  []Vehicle   `json:"vehicles"`
	Financing []Financing `json:"financing"`
	Insurance []Insurance `json:"insurance"`
	Expenses  []Expense   `json:"expenses"`
}

// Records returns the records of table t as [Record] values, in stored order.
func (d Dataset) Records(t Table) []Record {
	switch t {
	case TableSettings:
		return asRecords(d.Settings)
	case TableVehicles:
		return asRecords(d.Vehicles)
	case TableFinancing:
		return asRecords(d.Financing)
	case TableInsurance:
		return asRecords(d.Insurance)
	case TableExpenses:
		return asRecords(d.Expenses)
	}
	return nil
}

// Count returns the number of records in table t.
func (d Dataset) Count(t Table) int {
	switch t {
	case TableSettings:
		return len(d.Settings)
	case TableVehicles:
		return len(d.Vehicles)
	case TableFinancing:
		return len(d.Financing)
	case TableInsurance:
		return len(d.Insurance)
	case TableExpenses:
		return len(d.Expenses)
	}
	return 0
}

// Counts returns the per-table record counts.
func (d Dataset) Counts() map[Table]int {
	counts := make(map[Table]int, len(DependencyOrder))
	for _, t := range DependencyOrder {
		counts[t] = d.Count(t)
	}
	return counts
}

// Total returns the number of records across all tables.
func (d Dataset) Total() int {
	total := 0
	for _, t := range DependencyOrder {
		total += d.Count(t)
	}
	return total
}

// Append adds records to the matching typed table. It panics on a record
// type it does not know, which is a programming error.
func (d *Dataset) Append(records ...Record) {
	for _, r := range records {
		switch v := r.(type) {
		case Settings:
			d.Settings = append(d.Settings, v)
		case Vehicle:
			d.Vehicles = append(d.Vehicles, v)
		case Financing:
			d.Financing = append(d.Financing, v)
		case Insurance:
			d.Insurance = append(d.Insurance, v)
		case Expense:
			d.Expenses = append(d.Expenses, v)
		default:
			panic(fmt.Sprintf("models: unknown record type %T", r))
		}
	}
}

// OwnedBy returns a copy of d where every record belongs to userID and every
// timestamp is normalized with [NormalizeTime].
func (d Dataset) OwnedBy(userID string) Dataset {
	out := Dataset{
		Settings:  make([]Settings, 0, len(d.Settings)),
		Vehicles:  make([]Vehicle, 0, len(d.Vehicles)),
		Financing: make([]Financing, 0, len(d.Financing)),
		Insurance: make([]Insurance, 0, len(d.Insurance)),
		Expenses:  make([]Expense, 0, len(d.Expenses)),
	}

	for _, s := range d.Settings {
		s.UserID = userID
		s.UpdatedAt = NormalizeTime(s.UpdatedAt)
		out.Settings = append(out.Settings, s)
	}
	for _, v := range d.Vehicles {
		v.UserID = userID
		v.CreatedAt, v.UpdatedAt = NormalizeTime(v.CreatedAt), NormalizeTime(v.UpdatedAt)
		out.Vehicles = append(out.Vehicles, v)
	}
	for _, f := range d.Financing {
		f.UserID = userID
		f.StartDate = NormalizeTime(f.StartDate)
		f.CreatedAt, f.UpdatedAt = NormalizeTime(f.CreatedAt), NormalizeTime(f.UpdatedAt)
		out.Financing = append(out.Financing, f)
	}
	for _, i := range d.Insurance {
		i.UserID = userID
		i.StartDate = NormalizeTime(i.StartDate)
		i.EndDate = normalizeOptionalTime(i.EndDate)
		i.CreatedAt, i.UpdatedAt = NormalizeTime(i.CreatedAt), NormalizeTime(i.UpdatedAt)
		out.Insurance = append(out.Insurance, i)
	}
	for _, e := range d.Expenses {
		e.UserID = userID
		e.Date = NormalizeTime(e.Date)
		e.CreatedAt, e.UpdatedAt = NormalizeTime(e.CreatedAt), NormalizeTime(e.UpdatedAt)
		out.Expenses = append(out.Expenses, e)
	}

	return out
}

// Validate checks the structural contract of a dataset owned by owner:
//   - at most one settings record;
//   - every record has a non-empty identifier, unique within its table;
//   - every record belongs to owner;
//   - every foreign key resolves to a record of the same dataset.
func (d Dataset) Validate(owner string) error {
	if len(d.Settings) > 1 {
		return fmt.Errorf("%w: %d settings records", ErrDuplicateRecordID, len(d.Settings))
	}

	ids := make(map[Table]map[string]struct{}, len(DependencyOrder))
	for _, t := range DependencyOrder {
		seen := make(map[string]struct{}, d.Count(t))
		for _, r := range d.Records(t) {
			id := r.RecordID()
			if id == "" {
				return fmt.Errorf("%w: table %s", ErrEmptyRecordID, t)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s/%s", ErrDuplicateRecordID, t, id)
			}
			if r.Owner() != owner {
				return fmt.Errorf("%w: %s/%s belongs to %q", ErrForeignOwner, t, id, r.Owner())
			}
			seen[id] = struct{}{}
		}
		ids[t] = seen
	}

	// parents are checked after every table is indexed so order inside
	// the dataset does not matter
	for _, t := range DependencyOrder {
		for _, r := range d.Records(t) {
			for _, ref := range r.References() {
				if _, ok := ids[ref.Table][ref.ID]; !ok {
					return fmt.Errorf("%w: %s/%s -> %s/%s", ErrDanglingReference, t, r.RecordID(), ref.Table, ref.ID)
				}
			}
		}
	}

	return nil
}

func asRecords[T Record](items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func normalizeOptionalTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := NormalizeTime(*t)
	return &n
}

// Reown returns r reassigned to userID with its timestamps normalized.
func Reown(r Record, userID string) Record {
	var d Dataset
	d.Append(r)
	return d.OwnedBy(userID).Records(r.Table())[0]
}
