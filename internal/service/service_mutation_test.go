// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/mock"
	"github.com/MKhiriev/go-expense-sync/internal/store"
	"github.com/MKhiriev/go-expense-sync/models"
)

func payload(t *testing.T, record models.Record) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(record)
	require.NoError(t, err)
	return raw
}

func vehicleMutation(t *testing.T, op models.MutationOp, v models.Vehicle) models.Mutation {
	return models.Mutation{
		ID:       "mutation-1",
		Entity:   models.TableVehicles,
		Op:       op,
		RecordID: v.ID,
		Payload:  payload(t, v),
	}
}

func newTestMutationService(t *testing.T) (MutationService, *mock.MockEntityRepository, *mock.MockChangeTracker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	entities := mock.NewMockEntityRepository(ctrl)
	tracker := mock.NewMockChangeTracker(ctrl)
	return NewMutationService(entities, tracker, logger.Nop()), entities, tracker
}

func TestMutationService_Create_ReownsRecord(t *testing.T) {
	svc, entities, tracker := newTestMutationService(t)
	ctx := context.Background()

	// the payload claims another owner; the authenticated user wins
	m := vehicleMutation(t, models.OpCreate, vehicle("someone-else", "vehicle-1", "Daily"))

	gomock.InOrder(
		entities.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r models.Record) error {
			assert.Equal(t, "user-1", r.Owner())
			assert.Equal(t, "vehicle-1", r.RecordID())
			return nil
		}),
		tracker.EXPECT().MarkDataChanged(ctx, "user-1").Return(nil),
	)

	require.NoError(t, svc.Apply(ctx, "user-1", m))
}

func TestMutationService_Update(t *testing.T) {
	svc, entities, tracker := newTestMutationService(t)
	ctx := context.Background()

	entities.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	tracker.EXPECT().MarkDataChanged(ctx, "user-1").Return(nil)

	require.NoError(t, svc.Apply(ctx, "user-1", vehicleMutation(t, models.OpUpdate, vehicle("user-1", "vehicle-1", "Renamed"))))
}

func TestMutationService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		mutation models.Mutation
		wantID   string
	}{
		{
			name:     "record",
			mutation: models.Mutation{ID: "m", Entity: models.TableExpenses, Op: models.OpDelete, RecordID: "expense-1"},
			wantID:   "expense-1",
		},
		{
			name:     "settings are keyed by user",
			mutation: models.Mutation{ID: "m", Entity: models.TableSettings, Op: models.OpDelete, RecordID: "whatever"},
			wantID:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, entities, tracker := newTestMutationService(t)
			ctx := context.Background()

			entities.EXPECT().Delete(ctx, tt.mutation.Entity, "user-1", tt.wantID).Return(nil)
			tracker.EXPECT().MarkDataChanged(ctx, "user-1").Return(nil)

			require.NoError(t, svc.Apply(ctx, "user-1", tt.mutation))
		})
	}
}

func TestMutationService_WriteFailureLeavesChangeState(t *testing.T) {
	svc, entities, _ := newTestMutationService(t)
	ctx := context.Background()

	entities.EXPECT().Create(ctx, gomock.Any()).Return(store.ErrDuplicateRecord)

	err := svc.Apply(ctx, "user-1", vehicleMutation(t, models.OpCreate, vehicle("user-1", "vehicle-1", "Daily")))
	assert.ErrorIs(t, err, store.ErrDuplicateRecord)
}

func TestMutationService_MarkChangedFailureIsNotFatal(t *testing.T) {
	svc, entities, tracker := newTestMutationService(t)
	ctx := context.Background()

	entities.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	tracker.EXPECT().MarkDataChanged(ctx, "user-1").Return(errors.New("database is locked"))

	assert.NoError(t, svc.Apply(ctx, "user-1", vehicleMutation(t, models.OpCreate, vehicle("user-1", "vehicle-1", "Daily"))))
}

func TestMutationService_BadInput(t *testing.T) {
	svc, _, _ := newTestMutationService(t)
	ctx := context.Background()

	err := svc.Apply(ctx, "", models.Mutation{})
	assert.ErrorIs(t, err, ErrInvalidUserID)

	err = svc.Apply(ctx, "user-1", models.Mutation{ID: "m", Entity: models.TableVehicles, Op: models.OpCreate, RecordID: "v", Payload: json.RawMessage(`[`)})
	assert.ErrorIs(t, err, ErrInvalidMutation)

	err = svc.Apply(ctx, "user-1", models.Mutation{ID: "m", Entity: models.TableVehicles, Op: "upsert", RecordID: "v", Payload: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrInvalidMutation)
	assert.ErrorIs(t, err, models.ErrUnknownMutationOp)
}

func TestMutationService_WithRealStorage(t *testing.T) {
	db := newTestDB(t)
	tracker := NewChangeTracker(store.NewChangeStateRepository(db), logger.Nop())
	svc := NewMutationValidationService().Wrap(NewMutationService(store.NewEntityRepository(db), tracker, logger.Nop()))
	ctx := context.Background()

	create := vehicleMutation(t, models.OpCreate, vehicle("user-1", "vehicle-1", "Daily"))
	require.NoError(t, svc.Apply(ctx, "user-1", create))
	assert.True(t, tracker.HasChangesSinceLastSync(ctx, "user-1"))

	// a replayed create is reported as a duplicate
	assert.ErrorIs(t, svc.Apply(ctx, "user-1", create), store.ErrDuplicateRecord)

	got, err := store.NewDatasetRepository(db).ReadDataset(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Vehicles, 1)
	assert.Equal(t, "Daily", got.Vehicles[0].Name)
}
