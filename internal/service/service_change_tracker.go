// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

type changeTracker struct {
	repository store.ChangeStateRepository
	now        func() time.Time

	logger *logger.Logger
}

func NewChangeTracker(repository store.ChangeStateRepository, logger *logger.Logger) ChangeTracker {
	return &changeTracker{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (c *changeTracker) MarkDataChanged(ctx context.Context, userID string) error {
	return c.repository.SetLastDataChange(ctx, userID, models.NormalizeTime(c.now()))
}

func (c *changeTracker) HasChangesSinceLastSync(ctx context.Context, userID string) bool {
	state, err := c.repository.Get(ctx, userID)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "changeTracker.HasChangesSinceLastSync").
			Str("user_id", userID).
			Msg("change state unreadable, assuming changes")
		return true
	}
	return models.HasChanges(state)
}

func (c *changeTracker) GetChangeStatus(ctx context.Context, userID string) (models.ChangeStatus, error) {
	state, err := c.repository.Get(ctx, userID)
	if err != nil {
		return models.ChangeStatus{}, err
	}
	return state.Status(), nil
}

func (c *changeTracker) MarkSynced(ctx context.Context, userID string, at time.Time) error {
	return c.repository.SetLastSync(ctx, userID, models.NormalizeTime(at))
}

func (c *changeTracker) DeleteChangeState(ctx context.Context, userID string) error {
	return c.repository.Delete(ctx, userID)
}
