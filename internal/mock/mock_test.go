// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mock_test

import (
	"github.com/MKhiriev/go-expense-sync/internal/adapter"
	"github.com/MKhiriev/go-expense-sync/internal/crypto"
	"github.com/MKhiriev/go-expense-sync/internal/mock"
	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/internal/store"
)

// The mocks must keep implementing the interfaces they are generated from.
var (
	_ store.ChangeStateRepository     = (*mock.MockChangeStateRepository)(nil)
	_ store.DatasetReader             = (*mock.MockDatasetReader)(nil)
	_ store.DatasetWriter             = (*mock.MockDatasetWriter)(nil)
	_ store.DatasetRepository         = (*mock.MockDatasetRepository)(nil)
	_ store.EntityRepository          = (*mock.MockEntityRepository)(nil)
	_ store.BackupStore               = (*mock.MockBackupStore)(nil)
	_ store.SheetSink                 = (*mock.MockSheetSink)(nil)
	_ store.TabularMirror             = (*mock.MockTabularMirror)(nil)
	_ store.OfflineMutationRepository = (*mock.MockOfflineMutationRepository)(nil)

	_ service.ChangeTracker     = (*mock.MockChangeTracker)(nil)
	_ service.SnapshotCodec     = (*mock.MockSnapshotCodec)(nil)
	_ service.SnapshotService   = (*mock.MockSnapshotService)(nil)
	_ service.RestoreReconciler = (*mock.MockRestoreReconciler)(nil)
	_ service.SyncOrchestrator  = (*mock.MockSyncOrchestrator)(nil)
	_ service.MutationService   = (*mock.MockMutationService)(nil)
	_ service.AppInfoService    = (*mock.MockAppInfoService)(nil)

	_ adapter.ServerAdapter = (*mock.MockServerAdapter)(nil)
	_ crypto.Sealer         = (*mock.MockSealer)(nil)
)
