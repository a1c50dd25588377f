// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/MKhiriev/go-expense-sync/models"
)

// Field name constants accepted by Validate to scope mutation checks.
const (
	// FieldMutationID targets the client-generated id of the mutation.
	FieldMutationID = "id"

	// FieldEntity targets the table the mutation writes to.
	FieldEntity = "entity"

	// FieldOp targets the create/update/delete operation.
	FieldOp = "op"

	// FieldRecordID targets the id of the record being written.
	FieldRecordID = "record_id"

	// FieldPayload targets the record body. It is required for creates and
	// updates, must decode into the entity type and pass the record rules.
	FieldPayload = "payload"

	// FieldLocalID targets the queue id of an offline mutation.
	FieldLocalID = "local_id"
)

// Oldest and newest model years accepted for a vehicle. Zero means unknown.
const (
	minVehicleYear = 1886
	maxVehicleYear = 2100
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

	allowedDistanceUnits = []string{"km", "mi"}
	allowedVolumeUnits   = []string{"l", "gal"}
)

// MutationValidator implements [Validator] for client writes: mutations,
// offline queue entries and the entity records they carry.
type MutationValidator struct {
}

// NewMutationValidator constructs a MutationValidator returned as Validator.
func NewMutationValidator() Validator {
	return &MutationValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.Mutation / *models.Mutation
//   - models.OfflineMutation / *models.OfflineMutation
//   - models.Settings, models.Vehicle, models.Financing, models.Insurance,
//     models.Expense and their pointers
//
// Fields only scope mutation checks; records are always checked in full.
func (v *MutationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Mutation:
		return v.validateMutation(ctx, value, fields...)
	case *models.Mutation:
		return v.validateMutation(ctx, *value, fields...)

	case models.OfflineMutation:
		return v.validateOfflineMutation(ctx, value, fields...)
	case *models.OfflineMutation:
		return v.validateOfflineMutation(ctx, *value, fields...)

	case models.Settings:
		return validateSettings(value)
	case *models.Settings:
		return validateSettings(*value)
	case models.Vehicle:
		return validateVehicle(value)
	case *models.Vehicle:
		return validateVehicle(*value)
	case models.Financing:
		return validateFinancing(value)
	case *models.Financing:
		return validateFinancing(*value)
	case models.Insurance:
		return validateInsurance(value)
	case *models.Insurance:
		return validateInsurance(*value)
	case models.Expense:
		return validateExpense(value)
	case *models.Expense:
		return validateExpense(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateMutation checks a single mutation.
//
// Default validated fields (when none specified):
// ID, Entity, Op, RecordID, Payload.
func (v *MutationValidator) validateMutation(ctx context.Context, m models.Mutation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMutationID, FieldEntity, FieldOp, FieldRecordID, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldMutationID:
			if m.ID == "" {
				return ErrInvalidMutationID
			}
		case FieldEntity:
			if !m.Entity.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidEntity, m.Entity)
			}
		case FieldOp:
			if !m.Op.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidOperation, m.Op)
			}
		case FieldRecordID:
			if m.RecordID == "" {
				return ErrInvalidRecordID
			}
		case FieldPayload:
			if err := v.validatePayload(ctx, m); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload decodes the payload of create and update mutations and
// applies the record rules. Delete payloads are ignored.
func (v *MutationValidator) validatePayload(ctx context.Context, m models.Mutation) error {
	if m.Op == models.OpDelete {
		return nil
	}
	if len(m.Payload) == 0 {
		return ErrEmptyPayload
	}

	record, err := m.DecodeRecord()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	// settings are keyed by the authenticated user, not by a payload id
	if m.Entity != models.TableSettings && record.RecordID() != m.RecordID {
		return fmt.Errorf("%w: %q != %q", ErrRecordIDMismatch, record.RecordID(), m.RecordID)
	}

	return v.Validate(ctx, record)
}

// validateOfflineMutation checks the queue envelope, then the wrapped
// mutation with the same field scope.
func (v *MutationValidator) validateOfflineMutation(ctx context.Context, m models.OfflineMutation, fields ...string) error {
	if m.LocalID == "" {
		return ErrEmptyOfflineLocalID
	}

	scoped := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != FieldLocalID {
			scoped = append(scoped, f)
		}
	}
	if len(fields) > 0 && len(scoped) == 0 {
		return nil
	}

	return v.validateMutation(ctx, m.Mutation, scoped...)
}

func validateSettings(s models.Settings) error {
	if !currencyPattern.MatchString(s.Currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, s.Currency)
	}
	if s.DistanceUnit != "" && !slices.Contains(allowedDistanceUnits, s.DistanceUnit) {
		return fmt.Errorf("%w: distance %q", ErrInvalidUnit, s.DistanceUnit)
	}
	if s.VolumeUnit != "" && !slices.Contains(allowedVolumeUnits, s.VolumeUnit) {
		return fmt.Errorf("%w: volume %q", ErrInvalidUnit, s.VolumeUnit)
	}
	return nil
}

func validateVehicle(vh models.Vehicle) error {
	if vh.ID == "" {
		return ErrInvalidRecordID
	}
	if vh.Name == "" {
		return ErrEmptyName
	}
	if vh.Year != 0 && (vh.Year < minVehicleYear || vh.Year > maxVehicleYear) {
		return fmt.Errorf("%w: %d", ErrInvalidYear, vh.Year)
	}
	if vh.InitialMileage < 0 {
		return fmt.Errorf("%w: initial mileage", ErrNegativeValue)
	}
	return nil
}

func validateFinancing(f models.Financing) error {
	switch {
	case f.ID == "":
		return ErrInvalidRecordID
	case f.VehicleID == "":
		return ErrEmptyVehicleID
	case f.PrincipalCents < 0:
		return fmt.Errorf("%w: principal", ErrNegativeValue)
	case f.RateBasisPts < 0:
		return fmt.Errorf("%w: rate", ErrNegativeValue)
	case f.TermMonths < 1:
		return ErrInvalidTerm
	}
	return nil
}

func validateInsurance(i models.Insurance) error {
	switch {
	case i.ID == "":
		return ErrInvalidRecordID
	case i.VehicleID == "":
		return ErrEmptyVehicleID
	case i.PremiumCents < 0:
		return fmt.Errorf("%w: premium", ErrNegativeValue)
	case i.EndDate != nil && i.EndDate.Before(i.StartDate):
		return ErrInvalidPeriod
	}
	return nil
}

func validateExpense(e models.Expense) error {
	switch {
	case e.ID == "":
		return ErrInvalidRecordID
	case e.VehicleID == "":
		return ErrEmptyVehicleID
	case e.Category == "":
		return ErrEmptyCategory
	case e.AmountCents < 0:
		return fmt.Errorf("%w: amount", ErrNegativeValue)
	case e.Date.IsZero():
		return ErrEmptyDate
	case e.Mileage != nil && *e.Mileage < 0:
		return fmt.Errorf("%w: mileage", ErrNegativeValue)
	}
	return nil
}
