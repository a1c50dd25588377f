// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-sync/internal/archive"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

type restoreReconciler struct {
	datasets store.DatasetRepository

	logger *logger.Logger
}

func NewRestoreReconciler(datasets store.DatasetRepository, logger *logger.Logger) RestoreReconciler {
	return &restoreReconciler{
		datasets: datasets,
		logger:   logger,
	}
}

// Restore implements RestoreReconciler.
//
// Snapshot records are re-owned to userID, diffed against the stored
// dataset and, for replace and merge, written in one transaction. An empty
// diff or a preview opens no transaction.
func (r *restoreReconciler) Restore(ctx context.Context, userID string, mode models.RestoreMode, snapshot models.Snapshot) (models.RestoreResult, error) {
	if userID == "" {
		return models.RestoreResult{}, ErrInvalidUserID
	}

	target := snapshot.Dataset.OwnedBy(userID)
	if err := target.Validate(userID); err != nil {
		return models.RestoreResult{}, fmt.Errorf("%w: %w", archive.ErrMalformedSnapshot, err)
	}

	current, err := r.datasets.ReadDataset(ctx, userID)
	if err != nil {
		return models.RestoreResult{}, fmt.Errorf("read current dataset: %w", err)
	}

	diff := models.ComputeDiff(current, target, mode)
	result := models.RestoreResult{
		Mode: mode,
		Diff: diff.Summary(),
	}

	if !mode.Mutates() || diff.Empty() {
		result.Success = true
		return result, nil
	}

	var (
		reason    string
		attempted int
	)
	err = r.datasets.RunInTx(ctx, func(ctx context.Context, w store.DatasetWriter) error {
		if mode == models.RestoreReplace {
			return r.replace(ctx, w, userID, target, &reason, &attempted)
		}
		return r.merge(ctx, w, diff, &reason, &attempted)
	})
	if err != nil {
		if reason == "" {
			reason = "commit"
		}
		r.logger.Err(err).
			Str("func", "restoreReconciler.Restore").
			Str("user_id", userID).
			Str("mode", string(mode)).
			Int("records_attempted", attempted).
			Msg("restore rolled back")

		return result, &RestoreTransactionError{Reason: reason, RecordsAttempted: attempted, Err: err}
	}

	result.Success = true
	result.Applied = true
	result.Imported = imported(mode, target, diff)

	r.logger.Info().
		Str("func", "restoreReconciler.Restore").
		Str("user_id", userID).
		Str("mode", string(mode)).
		Int("records", attempted).
		Msg("restore applied")

	return result, nil
}

// replace clears the user's rows leaf tables first, then inserts every
// snapshot record parents first.
func (r *restoreReconciler) replace(ctx context.Context, w store.DatasetWriter, userID string, target models.Dataset, reason *string, attempted *int) error {
	for _, t := range models.DeleteOrder() {
		if _, err := w.DeleteAll(ctx, t, userID); err != nil {
			*reason = "delete " + string(t)
			return err
		}
	}

	for _, t := range models.DependencyOrder {
		for _, record := range target.Records(t) {
			*attempted++
			if err := w.Insert(ctx, record); err != nil {
				*reason = "insert " + string(t)
				return err
			}
		}
	}

	return nil
}

// merge upserts new and changed records parents first. Nothing is deleted.
func (r *restoreReconciler) merge(ctx context.Context, w store.DatasetWriter, diff models.RestoreDiff, reason *string, attempted *int) error {
	for _, t := range models.DependencyOrder {
		td := diff.Table(t)
		for _, records := range [][]models.Record{td.ToInsert, td.ToUpdate} {
			for _, record := range records {
				*attempted++
				if err := w.Upsert(ctx, record); err != nil {
					*reason = "upsert " + string(t)
					return err
				}
			}
		}
	}

	return nil
}

func imported(mode models.RestoreMode, target models.Dataset, diff models.RestoreDiff) map[models.Table]int {
	if mode == models.RestoreReplace {
		return target.Counts()
	}

	counts := make(map[models.Table]int, len(models.DependencyOrder))
	for _, t := range models.DependencyOrder {
		td := diff.Table(t)
		counts[t] = len(td.ToInsert) + len(td.ToUpdate)
	}
	return counts
}
