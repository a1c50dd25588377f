// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

type clientSyncJob struct {
	queue           ClientOfflineQueue
	serverAdapter   adapter.ServerAdapter
	inactivityDelay time.Duration
	now             func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	status SyncJobStatus

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that pings the server, replays
// the offline queue and triggers a server sync on a ticker. The job is idle
// until Start is called.
func NewClientSyncJob(queue ClientOfflineQueue, serverAdapter adapter.ServerAdapter, inactivityDelay time.Duration, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		queue:           queue,
		serverAdapter:   serverAdapter,
		inactivityDelay: inactivityDelay,
		now:             time.Now,
		logger:          logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls Tick every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.Tick(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Tick implements ClientSyncJob.
//
//  1. ping the server; offline ends the tick;
//  2. replay the offline queue;
//  3. when the queue is drained and the last local write is older than the
//     inactivity delay, ask the server to sync if anything changed.
func (j *clientSyncJob) Tick(ctx context.Context) SyncJobStatus {
	status := SyncJobStatus{At: j.now()}
	defer func() { j.setStatus(status) }()

	log := j.logger.With().Str("func", "clientSyncJob.Tick").Logger()

	if err := j.serverAdapter.Ping(ctx); err != nil {
		status.Error = err.Error()
		log.Debug().Err(err).Msg("server offline")
		return status
	}
	status.Online = true

	report, err := j.queue.Replay(ctx)
	status.Replay = report
	if err != nil {
		status.Error = err.Error()
		log.Warn().Err(err).Msg("replay failed")
		return status
	}
	if report.Remaining > 0 {
		return status
	}

	if last := j.queue.LastWrite(); !last.IsZero() && j.now().Sub(last) < j.inactivityDelay {
		return status
	}

	result, err := j.serverAdapter.TriggerSync(ctx, models.SyncRequest{})
	if err != nil {
		status.Error = err.Error()
		log.Warn().Err(err).Msg("sync trigger failed")
		return status
	}
	status.Sync = &result
	if result.SyncedAt != nil {
		status.LastSync = result.SyncedAt
	}

	return status
}

func (j *clientSyncJob) Status() SyncJobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// setStatus keeps the last known sync time across ticks that did not sync.
func (j *clientSyncJob) setStatus(status SyncJobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if status.LastSync == nil {
		status.LastSync = j.status.LastSync
	}
	j.status = status
}
