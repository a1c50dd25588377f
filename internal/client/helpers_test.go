// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
)

const (
	testUserID       = "user-1"
	testArchiveName  = "expenses-20260301T100000Z.tar.gz"
	testStoredBackup = "20260301T100000Z-0190c0de.tar.gz"
)

var fixtureTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fakeServer answers the sync API with canned results and records what the
// client sent.
type fakeServer struct {
	mu        sync.Mutex
	mutations []models.Mutation
	syncs     []models.SyncRequest
	uploads   [][]byte
	modes     []string
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()
	f := &fakeServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /mutations", func(w http.ResponseWriter, r *http.Request) {
		var m models.Mutation
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.mutations = append(f.mutations, m)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /sync/status", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteJSON(w, models.ChangeStatus{
			HasChangesSinceLastSync: true,
			LastDataChangeDate:      &fixtureTime,
		}, http.StatusOK)
	})
	mux.HandleFunc("POST /sync", func(w http.ResponseWriter, r *http.Request) {
		var req models.SyncRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.syncs = append(f.syncs, req)
		f.mu.Unlock()
		_, _ = utils.WriteJSON(w, models.SyncResult{
			Synced:  true,
			Records: 3,
			Targets: []models.TargetResult{{Target: models.TargetBackup, OK: true}},
			Backup:  &models.FileRef{Name: testStoredBackup},
		}, http.StatusOK)
	})
	mux.HandleFunc("GET /sync/download", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/gzip")
		w.Header().Set("Content-Disposition", `attachment; filename="`+testArchiveName+`"`)
		_, _ = w.Write([]byte("archive-bytes"))
	})
	mux.HandleFunc("POST /sync/upload", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mode := r.URL.Query().Get("mode")
		f.mu.Lock()
		f.uploads = append(f.uploads, body)
		f.modes = append(f.modes, mode)
		f.mu.Unlock()
		_, _ = utils.WriteJSON(w, models.RestoreResult{
			Mode:    models.RestoreMode(mode),
			Success: true,
			Diff:    []models.TableDiffSummary{{Table: models.TableVehicles, ToInsert: 1, Unchanged: 2}},
		}, http.StatusOK)
	})
	mux.HandleFunc("GET /sync/backups", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteJSON(w, []models.FileRef{{Name: testStoredBackup, Size: 512, CreatedAt: fixtureTime}}, http.StatusOK)
	})
	mux.HandleFunc("POST /sync/backups/{name}/restore", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != testStoredBackup {
			utils.WriteError(w, "backup not found", http.StatusNotFound)
			return
		}
		_, _ = utils.WriteJSON(w, models.RestoreResult{
			Mode:     models.RestoreMode(r.URL.Query().Get("mode")),
			Success:  true,
			Applied:  true,
			Imported: map[models.Table]int{models.TableVehicles: 2, models.TableExpenses: 5},
		}, http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

// unreachableURL returns the address of a server that is already closed.
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("go-expense-sync", testUserID, time.Hour, "sign-key")
	require.NoError(t, err)
	return token
}

func testConfig(t *testing.T, baseURL, dsn string) *config.ClientConfig {
	return &config.ClientConfig{
		App: config.ClientApp{Token: testToken(t)},
		Adapter: config.ClientAdapter{
			HTTPAddress:    baseURL,
			RequestTimeout: 2 * time.Second,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
		Workers: config.ClientWorkers{
			SyncInterval:    time.Minute,
			InactivityDelay: time.Second,
		},
	}
}

func testDSN(t *testing.T) string {
	return filepath.Join(t.TempDir(), "queue.db")
}

func appFactoryFor(t *testing.T, baseURL, dsn string) appFactory {
	return func(ctx context.Context, opts *RootOptions) (*App, error) {
		return NewApp(ctx, testConfig(t, baseURL, dsn), opts.buildInfo, logger.Nop())
	}
}

// execute runs the CLI with args and returns everything it printed.
func execute(t *testing.T, factory appFactory, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123"), factory)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
