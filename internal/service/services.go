// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/archive"
	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/crypto"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

type Services struct {
	AppInfoService   AppInfoService
	ChangeTracker    ChangeTracker
	SyncOrchestrator SyncOrchestrator
	MutationService  MutationService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	codec, err := newCodec(cfg.Sync)
	if err != nil {
		return nil, err
	}

	var targets []models.SyncTarget
	if storages.Mirror != nil {
		targets = append(targets, models.TargetMirror)
	}
	if storages.Backups != nil {
		targets = append(targets, models.TargetBackup)
	}

	appInfo, err := NewAppInfoService(cfg.App, codec.Sealed(), targets, logger)
	if err != nil {
		return nil, err
	}

	tracker := NewChangeTracker(storages.ChangeState, logger)
	snapshots := NewSnapshotService(storages.Datasets, codec, logger)
	restorer := NewRestoreReconciler(storages.Datasets, logger)

	mutations := NewMutationValidationService().
		Wrap(NewMutationService(storages.Entities, tracker, logger))

	return &Services{
		AppInfoService:   appInfo,
		ChangeTracker:    tracker,
		SyncOrchestrator: NewSyncOrchestrator(tracker, snapshots, restorer, storages.Backups, storages.Mirror, cfg.Sync, logger),
		MutationService:  mutations,
	}, nil
}

// newCodec seals archives when a backup passphrase is configured.
func newCodec(cfg config.Sync) (*archive.Codec, error) {
	opts := []archive.Option{archive.WithMaxSize(cfg.MaxArchiveSize)}

	if cfg.BackupPassphrase != "" {
		sealer, err := crypto.NewSealer(cfg.BackupPassphrase)
		if err != nil {
			return nil, fmt.Errorf("backup sealer: %w", err)
		}
		opts = append(opts, archive.WithSealer(sealer))
	}

	return archive.NewCodec(opts...), nil
}
