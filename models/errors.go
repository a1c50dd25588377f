// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Structural violations reported by [Dataset.Validate] and the parse helpers.
var (
	ErrUnknownTable       = errors.New("unknown table")
	ErrEmptyRecordID      = errors.New("record has empty id")
	ErrDuplicateRecordID  = errors.New("duplicate record id")
	ErrForeignOwner       = errors.New("record belongs to another user")
	ErrDanglingReference  = errors.New("dangling foreign key")
	ErrUnknownRestoreMode = errors.New("unknown restore mode")
	ErrUnknownMutationOp  = errors.New("unknown mutation operation")
)
