// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/internal/validators"
	"github.com/MKhiriev/go-expense-sync/models"
)

type clientOfflineQueue struct {
	repository    store.OfflineMutationRepository
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	ids           *utils.UUIDGenerator
	now           func() time.Time

	replaying atomic.Bool

	mu        sync.Mutex
	lastWrite time.Time

	logger *logger.Logger
}

// NewClientOfflineQueue creates the client write path over the local queue
// repository and the server adapter.
func NewClientOfflineQueue(repository store.OfflineMutationRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientOfflineQueue {
	return &clientOfflineQueue{
		repository:    repository,
		serverAdapter: serverAdapter,
		validator:     validators.NewMutationValidator(),
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

func (q *clientOfflineQueue) Submit(ctx context.Context, mutation models.Mutation) (models.SubmitResult, error) {
	if mutation.ID == "" {
		mutation.ID = q.ids.Generate()
	}
	if err := q.validator.Validate(ctx, mutation); err != nil {
		return models.SubmitResult{}, fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}

	q.touch()

	pending, err := q.repository.ListPending(ctx)
	if err != nil {
		return models.SubmitResult{}, fmt.Errorf("list pending mutations: %w", err)
	}
	if len(pending) > 0 || q.replaying.Load() {
		return q.submitBehindQueue(ctx, mutation)
	}

	err = q.serverAdapter.ApplyMutation(ctx, mutation)
	if err == nil {
		return models.SubmitResult{}, nil
	}
	if !errors.Is(err, adapter.ErrNetworkUnavailable) {
		return models.SubmitResult{}, err
	}

	q.logger.Info().
		Str("func", "clientOfflineQueue.Submit").
		Str("mutation_id", mutation.ID).
		Msg("server unreachable, queueing mutation")

	queued, err := q.Enqueue(ctx, mutation)
	if err != nil {
		return models.SubmitResult{}, err
	}

	return models.SubmitResult{Queued: true, LocalID: queued.LocalID}, nil
}

// submitBehindQueue appends mutation after the older pending entries and
// replays the queue, so the server sees the writes in enqueue order. The
// mutation is reported as applied only if the replay drained the queue.
func (q *clientOfflineQueue) submitBehindQueue(ctx context.Context, mutation models.Mutation) (models.SubmitResult, error) {
	queued, err := q.Enqueue(ctx, mutation)
	if err != nil {
		return models.SubmitResult{}, err
	}

	report, err := q.Replay(ctx)
	if err != nil {
		q.logger.Warn().Err(err).
			Str("func", "clientOfflineQueue.submitBehindQueue").
			Str("local_id", queued.LocalID).
			Msg("replay after enqueue failed, mutation stays queued")
	} else if report.Remaining == 0 {
		return models.SubmitResult{}, nil
	}

	return models.SubmitResult{Queued: true, LocalID: queued.LocalID}, nil
}

func (q *clientOfflineQueue) Enqueue(ctx context.Context, mutation models.Mutation) (models.OfflineMutation, error) {
	if mutation.ID == "" {
		mutation.ID = q.ids.Generate()
	}

	entry := models.OfflineMutation{
		LocalID:    q.ids.Generate(),
		Mutation:   mutation,
		EnqueuedAt: models.NormalizeTime(q.now()),
		State:      models.QueuePending,
	}
	if err := q.validator.Validate(ctx, entry); err != nil {
		return models.OfflineMutation{}, fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}

	q.touch()

	stored, err := q.repository.Append(ctx, entry)
	if err != nil {
		return models.OfflineMutation{}, fmt.Errorf("enqueue mutation: %w", err)
	}
	return stored, nil
}

// Replay implements ClientOfflineQueue. An unreachable server stops the
// pass without an error; the entries wait for the next replay.
func (q *clientOfflineQueue) Replay(ctx context.Context) (models.ReplayReport, error) {
	if !q.replaying.CompareAndSwap(false, true) {
		return models.ReplayReport{}, ErrReplayInProgress
	}
	defer q.replaying.Store(false)

	log := q.logger.With().Str("func", "clientOfflineQueue.Replay").Logger()

	pending, err := q.repository.ListPending(ctx)
	if err != nil {
		return models.ReplayReport{}, fmt.Errorf("list pending mutations: %w", err)
	}

	var (
		report    models.ReplayReport
		replayErr error
	)
	for _, entry := range pending {
		if err = ctx.Err(); err != nil {
			replayErr = err
			break
		}

		report.Attempted++
		err = q.serverAdapter.ApplyMutation(ctx, entry.Mutation)
		if err == nil || errors.Is(err, adapter.ErrDuplicate) {
			if err != nil {
				log.Debug().Str("local_id", entry.LocalID).Msg("server already applied mutation")
			}
			if err = q.repository.MarkSynced(ctx, entry.Seq); err != nil {
				replayErr = fmt.Errorf("mark %s synced: %w", entry.LocalID, err)
				break
			}
			report.Synced++
			continue
		}

		if attemptErr := q.repository.RecordAttempt(ctx, entry.Seq, err.Error()); attemptErr != nil {
			log.Err(attemptErr).Str("local_id", entry.LocalID).Msg("failed to record replay attempt")
		}
		report.StoppedAt = entry.LocalID
		if !errors.Is(err, adapter.ErrNetworkUnavailable) {
			replayErr = fmt.Errorf("replay %s: %w", entry.LocalID, err)
		}
		log.Warn().Err(err).Str("local_id", entry.LocalID).Msg("replay stopped")
		break
	}

	report.Remaining = len(pending) - report.Synced

	if report.Synced > 0 {
		if _, err = q.repository.PurgeSynced(ctx); err != nil {
			log.Err(err).Msg("failed to purge synced mutations")
		}
	}

	return report, replayErr
}

func (q *clientOfflineQueue) Pending(ctx context.Context) ([]models.OfflineMutation, error) {
	return q.repository.ListPending(ctx)
}

func (q *clientOfflineQueue) Purge(ctx context.Context) (int64, error) {
	return q.repository.PurgeSynced(ctx)
}

func (q *clientOfflineQueue) LastWrite() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastWrite
}

func (q *clientOfflineQueue) touch() {
	q.mu.Lock()
	q.lastWrite = q.now()
	q.mu.Unlock()
}
