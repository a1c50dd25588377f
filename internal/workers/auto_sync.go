// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

// AutoSyncWorker syncs users whose data changed and then stayed untouched
// for the inactivity delay. Clients that never call POST /sync are backed
// up this way.
type AutoSyncWorker struct {
	changes      store.ChangeStateRepository
	orchestrator service.SyncOrchestrator

	interval        time.Duration
	inactivityDelay time.Duration
	batch           int

	now func() time.Time

	logger *logger.Logger
}

func NewAutoSyncWorker(
	changes store.ChangeStateRepository,
	orchestrator service.SyncOrchestrator,
	cfg config.Workers,
	logger *logger.Logger,
) *AutoSyncWorker {
	return &AutoSyncWorker{
		changes:         changes,
		orchestrator:    orchestrator,
		interval:        cfg.AutoSyncInterval,
		inactivityDelay: cfg.InactivityDelay,
		batch:           cfg.AutoSyncBatch,
		now:             time.Now,
		logger:          logger,
	}
}

// Run sweeps every interval until ctx is cancelled.
func (w *AutoSyncWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	w.logger.Info().
		Dur("interval", w.interval).
		Dur("inactivity_delay", w.inactivityDelay).
		Msg("auto sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("auto sync worker stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs MaybeSync for one batch of idle dirty users and returns how
// many of them were synced. Failures are logged and retried on a later
// sweep because the change state stays dirty; the recorded attempt puts
// the user behind those not tried yet.
func (w *AutoSyncWorker) Sweep(ctx context.Context) int {
	log := w.logger.With().Str("func", "AutoSyncWorker.Sweep").Logger()

	userIDs, err := w.changes.ListDirty(ctx, w.now().Add(-w.inactivityDelay), w.batch)
	if err != nil {
		log.Err(err).Msg("failed to list users with pending changes")
		return 0
	}

	synced := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}

		if err = w.changes.SetLastSyncAttempt(ctx, userID, w.now()); err != nil {
			log.Err(err).Str("user_id", userID).Msg("failed to record sync attempt")
		}

		result, err := w.orchestrator.MaybeSync(ctx, userID, models.SyncTargets{})
		switch {
		case errors.Is(err, service.ErrConcurrentSync):
			log.Debug().Str("user_id", userID).Msg("sync already running, skipped")
		case errors.Is(err, service.ErrNoSyncTarget):
			log.Warn().Msg("no sync target configured, sweep aborted")
			return synced
		case err != nil:
			log.Err(err).Str("user_id", userID).Msg("auto sync failed")
		case result.Deferred:
			log.Info().Str("user_id", userID).Msg("auto sync deferred")
		case result.Synced:
			synced++
		}
	}

	if len(userIDs) > 0 {
		log.Info().Int("candidates", len(userIDs)).Int("synced", synced).Msg("auto sync sweep finished")
	}
	return synced
}
