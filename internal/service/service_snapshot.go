// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

type snapshotService struct {
	datasets store.DatasetReader
	codec    SnapshotCodec
	now      func() time.Time

	logger *logger.Logger
}

func NewSnapshotService(datasets store.DatasetReader, codec SnapshotCodec, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		datasets: datasets,
		codec:    codec,
		now:      time.Now,
		logger:   logger,
	}
}

// Export implements SnapshotService. The export instant is taken before the
// read so that writes racing with the export are newer than the snapshot.
func (s *snapshotService) Export(ctx context.Context, userID string) (models.Snapshot, []byte, error) {
	exportedAt := s.now()

	dataset, err := s.datasets.ReadDataset(ctx, userID)
	if err != nil {
		return models.Snapshot{}, nil, fmt.Errorf("read dataset: %w", err)
	}

	snapshot := models.NewSnapshot(userID, exportedAt, dataset)
	data, err := s.codec.Encode(snapshot)
	if err != nil {
		return models.Snapshot{}, nil, fmt.Errorf("encode snapshot: %w", err)
	}

	s.logger.Debug().
		Str("func", "snapshotService.Export").
		Str("user_id", userID).
		Int("records", dataset.Total()).
		Int("bytes", len(data)).
		Msg("snapshot exported")

	return snapshot, data, nil
}

func (s *snapshotService) Decode(data []byte) (models.Snapshot, error) {
	return s.codec.Decode(data)
}
