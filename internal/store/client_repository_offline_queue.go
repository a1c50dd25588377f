// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

const offlineMutationsTable = "offline_mutations"

var offlineMutationColumns = []string{
	"seq", "local_id", "mutation_id", "entity", "op", "record_id", "payload",
	"enqueued_at", "state", "attempts", "last_error",
}

// offlineMutationRepository persists the client offline queue in the
// offline_mutations table of the local SQLite database.
type offlineMutationRepository struct {
	*DB
}

func NewOfflineMutationRepository(db *DB) OfflineMutationRepository {
	return &offlineMutationRepository{DB: db}
}

func (o *offlineMutationRepository) Append(ctx context.Context, m models.OfflineMutation) (models.OfflineMutation, error) {
	m.EnqueuedAt = dbTime(m.EnqueuedAt)
	m.State = models.QueuePending

	query, args, err := psql.Insert(offlineMutationsTable).
		Columns("local_id", "mutation_id", "entity", "op", "record_id", "payload", "enqueued_at", "state").
		Values(m.LocalID, m.Mutation.ID, string(m.Mutation.Entity), string(m.Mutation.Op), m.Mutation.RecordID,
			string(m.Mutation.Payload), m.EnqueuedAt, string(m.State)).
		Suffix("RETURNING seq").
		ToSql()
	if err != nil {
		return models.OfflineMutation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = o.DB.QueryRowContext(ctx, query, args...).Scan(&m.Seq); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "offlineMutationRepository.Append").
			Str("local_id", m.LocalID).
			Msg("failed to enqueue mutation")
		return models.OfflineMutation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return m, nil
}

func (o *offlineMutationRepository) ListPending(ctx context.Context) ([]models.OfflineMutation, error) {
	return o.list(ctx, sq.Eq{"state": string(models.QueuePending)})
}

func (o *offlineMutationRepository) List(ctx context.Context) ([]models.OfflineMutation, error) {
	return o.list(ctx, nil)
}

func (o *offlineMutationRepository) list(ctx context.Context, where sq.Sqlizer) ([]models.OfflineMutation, error) {
	builder := psql.Select(offlineMutationColumns...).From(offlineMutationsTable).OrderBy("seq")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := o.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "offlineMutationRepository.list").
			Msg("failed to list offline queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]models.OfflineMutation, 0, 16)
	for rows.Next() {
		var (
			m       models.OfflineMutation
			payload string
		)
		err = rows.Scan(&m.Seq, &m.LocalID, &m.Mutation.ID, &m.Mutation.Entity, &m.Mutation.Op,
			&m.Mutation.RecordID, &payload, &m.EnqueuedAt, &m.State, &m.Attempts, &m.LastError)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if payload != "" {
			m.Mutation.Payload = json.RawMessage(payload)
		}
		m.EnqueuedAt = models.NormalizeTime(m.EnqueuedAt)
		out = append(out, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (o *offlineMutationRepository) MarkSynced(ctx context.Context, seq int64) error {
	return o.update(ctx, seq, psql.Update(offlineMutationsTable).
		Set("state", string(models.QueueSynced)).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", ""))
}

func (o *offlineMutationRepository) RecordAttempt(ctx context.Context, seq int64, lastError string) error {
	return o.update(ctx, seq, psql.Update(offlineMutationsTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", lastError))
}

func (o *offlineMutationRepository) update(ctx context.Context, seq int64, builder sq.UpdateBuilder) error {
	query, args, err := builder.Where(sq.Eq{"seq": seq}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "offlineMutationRepository.update").
			Int64("seq", seq).
			Msg("failed to update offline queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: seq %d", ErrQueueEntryNotFound, seq)
	}
	return nil
}

func (o *offlineMutationRepository) PurgeSynced(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete(offlineMutationsTable).
		Where(sq.Eq{"state": string(models.QueueSynced)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}
