// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMutationID = errors.New("invalid mutation id")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrEmptyPayload      = errors.New("payload is required")
	ErrInvalidPayload    = errors.New("payload does not decode into the entity")
	ErrRecordIDMismatch  = errors.New("payload id does not match record id")

	ErrInvalidCurrency     = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidUnit         = errors.New("unknown measurement unit")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidYear         = errors.New("invalid year")
	ErrNegativeValue       = errors.New("value cannot be negative")
	ErrEmptyVehicleID      = errors.New("vehicle id is required")
	ErrInvalidTerm         = errors.New("term must be at least one month")
	ErrInvalidPeriod       = errors.New("end date is before start date")
	ErrEmptyCategory       = errors.New("category is required")
	ErrEmptyDate           = errors.New("date is required")
	ErrEmptyOfflineLocalID = errors.New("offline mutation has no local id")
)
