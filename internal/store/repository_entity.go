// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

// entityRepository applies single-record writes coming from clients.
type entityRepository struct {
	*DB
}

func NewEntityRepository(db *DB) EntityRepository {
	return &entityRepository{DB: db}
}

// Create inserts record keeping its client-generated identifier.
func (e *entityRepository) Create(ctx context.Context, record models.Record) error {
	err := insertRecord(ctx, e.DB, e.DB, record, false)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.Create").
			Str("user_id", record.Owner()).
			Str("table", string(record.Table())).
			Str("record_id", record.RecordID()).
			Msg("failed to create record")
	}
	return err
}

// Update overwrites every non-key column of an existing record.
func (e *entityRepository) Update(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	schema, err := schemaFor(record.Table())
	if err != nil {
		return err
	}

	values := schema.values(record)
	builder := psql.Update(string(schema.table))
	where := sq.Eq{}
	for i, column := range schema.columns {
		if schema.isKey(column) {
			where[column] = values[i]
			continue
		}
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Update").
			Str("user_id", record.Owner()).
			Str("table", string(record.Table())).
			Str("record_id", record.RecordID()).
			Msg("failed to update record")
		return constraintError(e.DB, err, record)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrRecordNotFound, record.Table(), record.RecordID())
	}

	return nil
}

// Delete removes the record (table, userID, id). Child rows are removed by
// the ON DELETE CASCADE foreign keys.
func (e *entityRepository) Delete(ctx context.Context, table models.Table, userID, id string) error {
	schema, err := schemaFor(table)
	if err != nil {
		return err
	}

	where := sq.Eq{"user_id": userID}
	if len(schema.keyColumns) > 1 {
		where["id"] = id
	}

	query, args, err := psql.Delete(string(schema.table)).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.Delete").
			Str("user_id", userID).
			Str("table", string(table)).
			Str("record_id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
