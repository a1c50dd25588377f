// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/models"
)

// datasetRepository reads and rewrites a user's whole dataset.
//
// Reads happen inside one read-only transaction so that an export never
// observes a half-applied concurrent write. Writes go through
// [datasetWriter], which only ever sees the transaction handle.
type datasetRepository struct {
	*DB
}

func NewDatasetRepository(db *DB) DatasetRepository {
	return &datasetRepository{DB: db}
}

// ReadDataset materializes every table of userID from one consistent read.
func (d *datasetRepository) ReadDataset(ctx context.Context, userID string) (models.Dataset, error) {
	var dataset models.Dataset

	err := d.withTx(ctx, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead},
		func(ctx context.Context, tx DBTX) error {
			var err error
			dataset, err = readDataset(ctx, tx, userID)
			return err
		})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "datasetRepository.ReadDataset").
			Str("user_id", userID).
			Msg("failed to read dataset")
		return models.Dataset{}, err
	}

	return dataset, nil
}

// RunInTx runs fn inside one read-write transaction.
func (d *datasetRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, w DatasetWriter) error) error {
	return d.withTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, &datasetWriter{tx: tx, db: d.DB})
	})
}

// datasetWriter implements [DatasetWriter] over an open transaction.
type datasetWriter struct {
	tx DBTX
	db *DB
}

func (w *datasetWriter) ReadDataset(ctx context.Context, userID string) (models.Dataset, error) {
	return readDataset(ctx, w.tx, userID)
}

func (w *datasetWriter) DeleteAll(ctx context.Context, table models.Table, userID string) (int64, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return 0, err
	}

	query, args, err := psql.Delete(string(schema.table)).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := w.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: delete %s: %w", ErrExecutingStatement, table, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func (w *datasetWriter) Insert(ctx context.Context, record models.Record) error {
	return insertRecord(ctx, w.tx, w.db, record, false)
}

func (w *datasetWriter) Upsert(ctx context.Context, record models.Record) error {
	return insertRecord(ctx, w.tx, w.db, record, true)
}

func readDataset(ctx context.Context, q DBTX, userID string) (models.Dataset, error) {
	var dataset models.Dataset

	for _, table := range models.DependencyOrder {
		records, err := readTable(ctx, q, table, userID)
		if err != nil {
			return models.Dataset{}, err
		}
		dataset.Append(records...)
	}

	return dataset, nil
}

func readTable(ctx context.Context, q DBTX, table models.Table, userID string) ([]models.Record, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(schema.columns...).
		From(string(schema.table)).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(schema.keyOrder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExecutingQuery, table, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		record, scanErr := schema.scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrScanningRow, table, scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScanningRows, table, err)
	}

	return records, nil
}

// insertRecord inserts record, or upserts it on its primary key. Constraint
// violations are translated with the classifier of db.
func insertRecord(ctx context.Context, q DBTX, db *DB, record models.Record, upsert bool) error {
	schema, err := schemaFor(record.Table())
	if err != nil {
		return err
	}

	builder := psql.Insert(string(schema.table)).
		Columns(schema.columns...).
		Values(schema.values(record)...)
	if upsert {
		builder = builder.Suffix(schema.upsertSuffix())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return constraintError(db, err, record)
	}

	return nil
}

// constraintError maps a failed write onto the store sentinels.
func constraintError(db *DB, err error, record models.Record) error {
	switch db.classify(err) {
	case Conflict:
		return fmt.Errorf("%w: %s/%s: %w", ErrDuplicateRecord, record.Table(), record.RecordID(), err)
	case InvalidReference:
		return fmt.Errorf("%w: %s/%s: %w", ErrInvalidReference, record.Table(), record.RecordID(), err)
	}
	return fmt.Errorf("%w: %s/%s: %w", ErrExecutingStatement, record.Table(), record.RecordID(), err)
}
