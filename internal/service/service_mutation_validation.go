// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/validators"
	"github.com/MKhiriev/go-expense-sync/models"
)

type MutationValidationService struct {
	inner     MutationService
	validator validators.Validator
}

// MutationServiceWrapper defines middleware composition for MutationService.
// Implementations wrap an existing MutationService to add behavior such as
// validation.
type MutationServiceWrapper interface {
	Wrap(MutationService) MutationService
}

func NewMutationValidationService() MutationServiceWrapper {
	return &MutationValidationService{
		validator: validators.NewMutationValidator(),
	}
}

func (v *MutationValidationService) Apply(ctx context.Context, userID string, mutation models.Mutation) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if err := v.validator.Validate(ctx, mutation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}

	return v.inner.Apply(ctx, userID, mutation)
}

func (v *MutationValidationService) Wrap(wrapped MutationService) MutationService {
	v.inner = wrapped
	return v
}
