// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
)

// Table names one user-owned entity table. The string value is used as the
// SQL table name, the archive document name and the mirror sheet name.
type Table string

const (
	TableSettings  Table = "settings"
	TableVehicles  Table = "vehicles"
	TableFinancing Table = "financing"
	TableInsurance Table = "insurance"
	TableExpenses  Table = "expenses"
)

// DependencyOrder is the static topological order of entity tables:
// parents come before the children that reference them.
//
//	settings → vehicles → {financing, insurance, expenses}
var DependencyOrder = []Table{
	TableSettings,
	TableVehicles,
	TableFinancing,
	TableInsurance,
	TableExpenses,
}

// DeleteOrder returns [DependencyOrder] reversed, leaf tables first.
func DeleteOrder() []Table {
	order := slices.Clone(DependencyOrder)
	slices.Reverse(order)
	return order
}

// Valid reports whether t is one of the known entity tables.
func (t Table) Valid() bool {
	return slices.Contains(DependencyOrder, t)
}

// ParseTable converts s into a [Table], rejecting unknown names.
func ParseTable(s string) (Table, error) {
	t := Table(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTable, s)
	}
	return t, nil
}

// Reference is a foreign key held by a record: the table and identifier of
// the parent it points to.
type Reference struct {
	Table Table
	ID    string
}

// Record is implemented by every per-table record type.
type Record interface {
	// Table returns the table the record belongs to.
	Table() Table
	// RecordID returns the stable identifier of the record.
	RecordID() string
	// Owner returns the id of the user owning the record.
	Owner() string
	// References lists the foreign keys of the record.
	References() []Reference
	// SameAs reports whether other carries identical field values.
	SameAs(other Record) bool
}
