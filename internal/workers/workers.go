// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server workers enabled by cfg. The auto sync sweep
// is off when cfg.AutoSyncInterval is not positive.
func NewWorkers(storages *store.Storages, services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.AutoSyncInterval > 0 {
		w.workers = append(w.workers, NewAutoSyncWorker(storages.ChangeState, services.SyncOrchestrator, cfg, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// Len reports the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
