// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client writes before they reach storage or the
// offline queue.
//
// [NewMutationValidator] validates a mutation envelope (ids, entity, op), the
// queue envelope of an offline mutation, and the typed record decoded from a
// create or update payload: currencies, units, years and non-negative
// amounts. Field names narrow a call to part of the envelope.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
