// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
)

type ClientServices struct {
	OfflineQueue ClientOfflineQueue
	SyncService  ClientSyncService
	SyncJob      ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	queue := NewClientOfflineQueue(storages.OfflineQueue, serverAdapter, logger)

	return &ClientServices{
		OfflineQueue: queue,
		SyncService:  NewClientSyncService(storages.OfflineQueue, serverAdapter),
		SyncJob:      NewClientSyncJob(queue, serverAdapter, cfg.InactivityDelay, logger),
	}
}
