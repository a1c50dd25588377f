// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
)

// backupTimeLayout sorts lexically in time order.
const backupTimeLayout = "20060102T150405.000000Z"

// syncOrchestrator is the concrete SyncOrchestrator. backups and mirror are
// nil when the matching target is not configured.
type syncOrchestrator struct {
	tracker   ChangeTracker
	snapshots SnapshotService
	restorer  RestoreReconciler
	backups   store.BackupStore
	mirror    store.TabularMirror

	locks *userLocks
	ids   *utils.UUIDGenerator
	cfg   config.Sync
	now   func() time.Time

	logger *logger.Logger
}

func NewSyncOrchestrator(
	tracker ChangeTracker,
	snapshots SnapshotService,
	restorer RestoreReconciler,
	backups store.BackupStore,
	mirror store.TabularMirror,
	cfg config.Sync,
	logger *logger.Logger,
) SyncOrchestrator {
	return &syncOrchestrator{
		tracker:   tracker,
		snapshots: snapshots,
		restorer:  restorer,
		backups:   backups,
		mirror:    mirror,
		locks:     newUserLocks(),
		ids:       utils.NewUUIDGenerator(),
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *syncOrchestrator) MaybeSync(ctx context.Context, userID string, targets models.SyncTargets) (models.SyncResult, error) {
	if userID == "" {
		return models.SyncResult{}, ErrInvalidUserID
	}

	if !s.tracker.HasChangesSinceLastSync(ctx, userID) {
		s.logger.Debug().
			Str("func", "syncOrchestrator.MaybeSync").
			Str("user_id", userID).
			Msg("no changes since last sync, skipping")
		return models.SyncResult{Skipped: true}, nil
	}

	return s.Sync(ctx, userID, targets)
}

// Sync implements SyncOrchestrator.
//
// The snapshot is exported once and written to every resolved target. A
// target failing with store.ErrRemoteUnavailable defers the sync: the result
// is returned without error and the sync date is left untouched, so the
// next sync retries every target.
func (s *syncOrchestrator) Sync(ctx context.Context, userID string, targets models.SyncTargets) (models.SyncResult, error) {
	if userID == "" {
		return models.SyncResult{}, ErrInvalidUserID
	}

	toMirror, toBackup, err := s.resolveTargets(targets)
	if err != nil {
		return models.SyncResult{}, err
	}

	release, ok := s.locks.tryLock(userID)
	if !ok {
		return models.SyncResult{}, ErrConcurrentSync
	}
	defer release()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	started := s.now()
	log := s.logger.With().
		Str("func", "syncOrchestrator.Sync").
		Str("user_id", userID).
		Logger()

	snapshot, data, err := s.snapshots.Export(ctx, userID)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("export snapshot: %w", err)
	}

	result := models.SyncResult{Records: snapshot.Dataset.Total()}
	deferred := false

	if toMirror {
		err = s.mirror.Write(ctx, userID, snapshot)
		result.Targets = append(result.Targets, targetResult(models.TargetMirror, err))
		if err != nil {
			if !errors.Is(err, store.ErrRemoteUnavailable) {
				return result, fmt.Errorf("mirror: %w", err)
			}
			log.Warn().Err(err).Msg("mirror unavailable, sync deferred")
			deferred = true
		}
	}

	if toBackup {
		var ref models.FileRef
		ref, err = s.backups.Upload(ctx, userID, s.backupName(snapshot.ExportedAt), data)
		result.Targets = append(result.Targets, targetResult(models.TargetBackup, err))
		switch {
		case err == nil:
			result.Backup = &ref
			s.pruneBackups(ctx, userID)
		case errors.Is(err, store.ErrRemoteUnavailable):
			log.Warn().Err(err).Msg("backup store unavailable, sync deferred")
			deferred = true
		default:
			return result, fmt.Errorf("backup: %w", err)
		}
	}

	result.ElapsedMs = s.now().Sub(started).Milliseconds()

	if deferred {
		result.Deferred = true
		return result, nil
	}

	if err = s.tracker.MarkSynced(ctx, userID, snapshot.ExportedAt); err != nil {
		return result, fmt.Errorf("mark synced: %w", err)
	}

	syncedAt := snapshot.ExportedAt
	result.Synced = true
	result.SyncedAt = &syncedAt

	log.Info().
		Int("records", result.Records).
		Int64("elapsed_ms", result.ElapsedMs).
		Msg("sync completed")

	return result, nil
}

// resolveTargets intersects the requested targets with the configured ones.
// The zero value requests every configured target.
func (s *syncOrchestrator) resolveTargets(targets models.SyncTargets) (bool, bool, error) {
	if targets.IsZero() {
		toMirror, toBackup := s.mirror != nil, s.backups != nil
		if !toMirror && !toBackup {
			return false, false, ErrNoSyncTarget
		}
		return toMirror, toBackup, nil
	}

	if targets.Mirror && s.mirror == nil {
		return false, false, fmt.Errorf("%w: %s", ErrNoSyncTarget, models.TargetMirror)
	}
	if targets.Backup && s.backups == nil {
		return false, false, fmt.Errorf("%w: %s", ErrNoSyncTarget, models.TargetBackup)
	}
	return targets.Mirror, targets.Backup, nil
}

func (s *syncOrchestrator) backupName(exportedAt time.Time) string {
	return fmt.Sprintf("snapshot-%s-%s.tar.gz", exportedAt.UTC().Format(backupTimeLayout), s.ids.Generate())
}

// pruneBackups deletes archives beyond cfg.MaxBackups. Failures are logged
// and retried on the next successful upload.
func (s *syncOrchestrator) pruneBackups(ctx context.Context, userID string) {
	if s.cfg.MaxBackups <= 0 {
		return
	}

	refs, err := s.backups.List(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "syncOrchestrator.pruneBackups").Str("user_id", userID).Msg("listing backups failed")
		return
	}

	for _, ref := range refs[min(s.cfg.MaxBackups, len(refs)):] {
		if err = s.backups.Delete(ctx, ref); err != nil {
			s.logger.Warn().Err(err).Str("func", "syncOrchestrator.pruneBackups").Str("backup", ref.Name).Msg("deleting old backup failed")
		}
	}
}

func (s *syncOrchestrator) RestoreFromBackup(ctx context.Context, userID string, archive []byte, mode models.RestoreMode) (models.RestoreResult, error) {
	if userID == "" {
		return models.RestoreResult{}, ErrInvalidUserID
	}

	release, ok := s.locks.tryLock(userID)
	if !ok {
		return models.RestoreResult{}, ErrConcurrentSync
	}
	defer release()

	ctx, cancel := s.withRestoreTimeout(ctx)
	defer cancel()

	return s.restore(ctx, userID, archive, mode)
}

// RestoreFromStoredBackup implements SyncOrchestrator. The archive is
// fetched before any transaction is opened.
func (s *syncOrchestrator) RestoreFromStoredBackup(ctx context.Context, userID, name string, mode models.RestoreMode) (models.RestoreResult, error) {
	if userID == "" {
		return models.RestoreResult{}, ErrInvalidUserID
	}
	if s.backups == nil {
		return models.RestoreResult{}, ErrBackupsNotConfigured
	}

	release, ok := s.locks.tryLock(userID)
	if !ok {
		return models.RestoreResult{}, ErrConcurrentSync
	}
	defer release()

	ctx, cancel := s.withRestoreTimeout(ctx)
	defer cancel()

	data, err := s.backups.Fetch(ctx, models.FileRef{UserID: userID, Name: name})
	if err != nil {
		return models.RestoreResult{}, fmt.Errorf("fetch backup: %w", err)
	}

	return s.restore(ctx, userID, data, mode)
}

func (s *syncOrchestrator) withRestoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RestoreTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.RestoreTimeout)
	}
	return context.WithCancel(ctx)
}

// restore decodes archive and reconciles it. A decode failure never
// reaches storage.
func (s *syncOrchestrator) restore(ctx context.Context, userID string, archive []byte, mode models.RestoreMode) (models.RestoreResult, error) {
	snapshot, err := s.snapshots.Decode(archive)
	if err != nil {
		return models.RestoreResult{Mode: mode}, err
	}

	result, err := s.restorer.Restore(ctx, userID, mode, snapshot)
	if err != nil {
		return result, err
	}

	if result.Applied {
		if err = s.tracker.MarkDataChanged(ctx, userID); err != nil {
			s.logger.Err(err).
				Str("func", "syncOrchestrator.restore").
				Str("user_id", userID).
				Msg("failed to mark data changed after restore")
		}
	}

	return result, nil
}

func (s *syncOrchestrator) Download(ctx context.Context, userID string) ([]byte, models.Snapshot, error) {
	if userID == "" {
		return nil, models.Snapshot{}, ErrInvalidUserID
	}

	snapshot, data, err := s.snapshots.Export(ctx, userID)
	if err != nil {
		return nil, models.Snapshot{}, err
	}
	return data, snapshot, nil
}

func (s *syncOrchestrator) ListBackups(ctx context.Context, userID string) ([]models.FileRef, error) {
	if s.backups == nil {
		return nil, ErrBackupsNotConfigured
	}
	return s.backups.List(ctx, userID)
}

func (s *syncOrchestrator) Status(ctx context.Context, userID string) (models.ChangeStatus, error) {
	return s.tracker.GetChangeStatus(ctx, userID)
}

func targetResult(target models.SyncTarget, err error) models.TargetResult {
	if err != nil {
		return models.TargetResult{Target: target, Error: err.Error()}
	}
	return models.TargetResult{Target: target, OK: true}
}
