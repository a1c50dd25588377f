// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Settings is the root record of a user's dataset. There is at most one
// per user and its identifier is the user id itself.
type Settings struct {
	UserID       string    `json:"user_id"`
	Currency     string    `json:"currency"`
	DistanceUnit string    `json:"distance_unit"`
	VolumeUnit   string    `json:"volume_unit"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s Settings) Table() Table             { return TableSettings }
func (s Settings) RecordID() string         { return s.UserID }
func (s Settings) Owner() string            { return s.UserID }
func (s Settings) References() []Reference  { return nil }
func (s Settings) SameAs(other Record) bool {
	o, ok := other.(Settings)
	return ok &&
		s.UserID == o.UserID &&
		s.Currency == o.Currency &&
		s.DistanceUnit == o.DistanceUnit &&
		s.VolumeUnit == o.VolumeUnit &&
		sameInstant(s.UpdatedAt, o.UpdatedAt)
}

// Vehicle is a tracked vehicle. Financing, insurance and expense records
// reference it by ID.
type Vehicle struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	LicensePlate   string    `json:"license_plate"`
	InitialMileage int64     `json:"initial_mileage"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (v Vehicle) Table() Table            { return TableVehicles }
func (v Vehicle) RecordID() string        { return v.ID }
func (v Vehicle) Owner() string           { return v.UserID }
func (v Vehicle) References() []Reference { return nil }
func (v Vehicle) SameAs(other Record) bool {
	o, ok := other.(Vehicle)
	return ok &&
		v.ID == o.ID &&
		v.UserID == o.UserID &&
		v.Name == o.Name &&
		v.Make == o.Make &&
		v.Model == o.Model &&
		v.Year == o.Year &&
		v.LicensePlate == o.LicensePlate &&
		v.InitialMileage == o.InitialMileage &&
		sameInstant(v.CreatedAt, o.CreatedAt) &&
		sameInstant(v.UpdatedAt, o.UpdatedAt)
}

// Financing is a loan or lease attached to a vehicle.
// Amounts are kept in minor currency units, rates in basis points.
type Financing struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	VehicleID      string    `json:"vehicle_id"`
	Lender         string    `json:"lender"`
	PrincipalCents int64     `json:"principal_cents"`
	RateBasisPts   int64     `json:"rate_basis_points"`
	TermMonths     int       `json:"term_months"`
	StartDate      time.Time `json:"start_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (f Financing) Table() Table     { return TableFinancing }
func (f Financing) RecordID() string { return f.ID }
func (f Financing) Owner() string    { return f.UserID }
func (f Financing) References() []Reference {
	return []Reference{{Table: TableVehicles, ID: f.VehicleID}}
}
func (f Financing) SameAs(other Record) bool {
	o, ok := other.(Financing)
	return ok &&
		f.ID == o.ID &&
		f.UserID == o.UserID &&
		f.VehicleID == o.VehicleID &&
		f.Lender == o.Lender &&
		f.PrincipalCents == o.PrincipalCents &&
		f.RateBasisPts == o.RateBasisPts &&
		f.TermMonths == o.TermMonths &&
		sameInstant(f.StartDate, o.StartDate) &&
		sameInstant(f.CreatedAt, o.CreatedAt) &&
		sameInstant(f.UpdatedAt, o.UpdatedAt)
}

// Insurance is a policy covering a vehicle. EndDate is nil for open-ended
// policies.
type Insurance struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	VehicleID    string     `json:"vehicle_id"`
	Provider     string     `json:"provider"`
	PolicyNumber string     `json:"policy_number"`
	PremiumCents int64      `json:"premium_cents"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (i Insurance) Table() Table     { return TableInsurance }
func (i Insurance) RecordID() string { return i.ID }
func (i Insurance) Owner() string    { return i.UserID }
func (i Insurance) References() []Reference {
	return []Reference{{Table: TableVehicles, ID: i.VehicleID}}
}
func (i Insurance) SameAs(other Record) bool {
	o, ok := other.(Insurance)
	return ok &&
		i.ID == o.ID &&
		i.UserID == o.UserID &&
		i.VehicleID == o.VehicleID &&
		i.Provider == o.Provider &&
		i.PolicyNumber == o.PolicyNumber &&
		i.PremiumCents == o.PremiumCents &&
		sameInstant(i.StartDate, o.StartDate) &&
		sameOptionalInstant(i.EndDate, o.EndDate) &&
		sameInstant(i.CreatedAt, o.CreatedAt) &&
		sameInstant(i.UpdatedAt, o.UpdatedAt)
}

// Expense is a single spending entry for a vehicle (fuel, service, tolls...).
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	VehicleID   string    `json:"vehicle_id"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
	Mileage     *int64    `json:"mileage,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e Expense) Table() Table     { return TableExpenses }
func (e Expense) RecordID() string { return e.ID }
func (e Expense) Owner() string    { return e.UserID }
func (e Expense) References() []Reference {
	return []Reference{{Table: TableVehicles, ID: e.VehicleID}}
}
func (e Expense) SameAs(other Record) bool {
	o, ok := other.(Expense)
	return ok &&
		e.ID == o.ID &&
		e.UserID == o.UserID &&
		e.VehicleID == o.VehicleID &&
		e.Category == o.Category &&
		e.AmountCents == o.AmountCents &&
		sameInstant(e.Date, o.Date) &&
		sameOptionalInt(e.Mileage, o.Mileage) &&
		e.Description == o.Description &&
		sameInstant(e.CreatedAt, o.CreatedAt) &&
		sameInstant(e.UpdatedAt, o.UpdatedAt)
}

// TimePrecision is the precision timestamps keep through storage; values are
// compared and persisted at this resolution.
const TimePrecision = time.Microsecond

// NormalizeTime converts t to UTC at [TimePrecision].
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimePrecision)
}

func sameInstant(a, b time.Time) bool {
	return a.Truncate(TimePrecision).Equal(b.Truncate(TimePrecision))
}

func sameOptionalInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameInstant(*a, *b)
}

func sameOptionalInt(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
