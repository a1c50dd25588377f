// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

const changeStateTable = "change_state"

// changeStateRepository stores the two change-tracking timestamps of each
// user in the change_state table. Each setter upserts only its own column.
type changeStateRepository struct {
	*DB
}

func NewChangeStateRepository(db *DB) ChangeStateRepository {
	return &changeStateRepository{DB: db}
}

func (c *changeStateRepository) Get(ctx context.Context, userID string) (models.ChangeState, error) {
	query, args, err := psql.Select("user_id", "last_data_change_date", "last_sync_date").
		From(changeStateTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.ChangeState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		state        = models.ChangeState{UserID: userID}
		lastChange   sql.NullTime
		lastSyncDate sql.NullTime
	)

	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&state.UserID, &lastChange, &lastSyncDate)
	if errors.Is(err, sql.ErrNoRows) {
		return state, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changeStateRepository.Get").
			Str("user_id", userID).
			Msg("failed to read change state")
		return models.ChangeState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	state.LastDataChangeDate = nullTime(lastChange)
	state.LastSyncDate = nullTime(lastSyncDate)

	return state, nil
}

func (c *changeStateRepository) SetLastDataChange(ctx context.Context, userID string, at time.Time) error {
	return c.set(ctx, userID, "last_data_change_date", at)
}

func (c *changeStateRepository) SetLastSync(ctx context.Context, userID string, at time.Time) error {
	return c.set(ctx, userID, "last_sync_date", at)
}

func (c *changeStateRepository) set(ctx context.Context, userID, column string, at time.Time) error {
	query, args, err := psql.Insert(changeStateTable).
		Columns("user_id", column).
		Values(userID, dbTime(at)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + column + " = EXCLUDED." + column).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changeStateRepository.set").
			Str("user_id", userID).
			Str("column", column).
			Msg("failed to persist change state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *changeStateRepository) SetLastSyncAttempt(ctx context.Context, userID string, at time.Time) error {
	return c.set(ctx, userID, "last_sync_attempt_date", at)
}

// ListDirty orders candidates by their last sync attempt, oldest and never
// attempted first, so users whose syncs keep failing rotate to the back of
// the next sweep. A missing change date counts as changed and idle.
func (c *changeStateRepository) ListDirty(ctx context.Context, idleBefore time.Time, limit int) ([]string, error) {
	builder := psql.Select("user_id").
		From(changeStateTable).
		Where(sq.Or{
			sq.Eq{"last_data_change_date": nil},
			sq.And{
				sq.LtOrEq{"last_data_change_date": dbTime(idleBefore)},
				sq.Or{
					sq.Eq{"last_sync_date": nil},
					sq.Expr("last_data_change_date > last_sync_date"),
				},
			},
		}).
		OrderBy(
			"last_sync_attempt_date IS NOT NULL",
			"last_sync_attempt_date",
			"last_data_change_date IS NOT NULL",
			"last_data_change_date",
			"user_id",
		)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changeStateRepository.ListDirty").
			Msg("failed to list dirty users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	userIDs := make([]string, 0, 16)
	for rows.Next() {
		var userID string
		if err = rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return userIDs, nil
}

func (c *changeStateRepository) Delete(ctx context.Context, userID string) error {
	query, args, err := psql.Delete(changeStateTable).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := models.NormalizeTime(t.Time)
	return &v
}
