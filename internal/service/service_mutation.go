// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

type mutationService struct {
	entities store.EntityRepository
	tracker  ChangeTracker

	logger *logger.Logger
}

func NewMutationService(entities store.EntityRepository, tracker ChangeTracker, logger *logger.Logger) MutationService {
	return &mutationService{
		entities: entities,
		tracker:  tracker,
		logger:   logger,
	}
}

// Apply implements MutationService. The record is re-owned to userID before
// it is written; settings are keyed by userID whatever the payload says.
// A successful write marks the user's data as changed.
func (m *mutationService) Apply(ctx context.Context, userID string, mutation models.Mutation) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if err := m.write(ctx, userID, mutation); err != nil {
		return err
	}

	if err := m.tracker.MarkDataChanged(ctx, userID); err != nil {
		m.logger.Err(err).
			Str("func", "mutationService.Apply").
			Str("user_id", userID).
			Msg("failed to mark data changed")
	}

	return nil
}

func (m *mutationService) write(ctx context.Context, userID string, mutation models.Mutation) error {
	if mutation.Op == models.OpDelete {
		id := mutation.RecordID
		if mutation.Entity == models.TableSettings {
			id = userID
		}
		return m.entities.Delete(ctx, mutation.Entity, userID, id)
	}

	record, err := mutation.DecodeRecord()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}
	record = models.Reown(record, userID)

	switch mutation.Op {
	case models.OpCreate:
		return m.entities.Create(ctx, record)
	case models.OpUpdate:
		return m.entities.Update(ctx, record)
	}

	return fmt.Errorf("%w: %w: %q", ErrInvalidMutation, models.ErrUnknownMutationOp, mutation.Op)
}
