// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-expense-sync/internal/app"
	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter points an httpServerAdapter at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}
	appCfg := config.ClientApp{HashKey: testHashKey, Token: "token-1"}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	utils.WriteError(w, msg, status)
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).Ping(context.Background()))
}

func TestPing_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url).Ping(context.Background())
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestPing_GatewayErrorsAreUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		err := newTestAdapter(t, srv.URL).Ping(context.Background())
		assert.ErrorIs(t, err, ErrNetworkUnavailable, "status %d", status)
		srv.Close()
	}
}

// ── ApplyMutation ───────────────────────────────────────────────────────────

func testMutation() models.Mutation {
	return models.Mutation{
		ID:       "mut-1",
		Entity:   models.TableVehicles,
		Op:       models.OpCreate,
		RecordID: "vehicle-1",
		Payload:  json.RawMessage(`{"id":"vehicle-1","name":"Daily"}`),
	}
}

func TestApplyMutation_SignedAndAuthorized(t *testing.T) {
	hasher := utils.NewHasher(testHashKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mutations", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.True(t, hasher.Verify(body, r.Header.Get(HashHeader)))

		var got models.Mutation
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "mut-1", got.ID)
		assert.JSONEq(t, `{"id":"vehicle-1","name":"Daily"}`, string(got.Payload))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).ApplyMutation(context.Background(), testMutation()))
}

func TestApplyMutation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		wantErr error
	}{
		{name: "duplicate", status: http.StatusConflict, message: app.MsgRecordAlreadyExists, wantErr: ErrDuplicate},
		{name: "other conflict", status: http.StatusConflict, message: app.MsgSyncInProgress, wantErr: ErrConflict},
		{name: "invalid", status: http.StatusBadRequest, message: app.MsgInvalidDataProvided, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, message: app.MsgDataNotFound, wantErr: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, message: app.MsgInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, tt.message, tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).ApplyMutation(context.Background(), testMutation())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestApplyMutation_DuplicateIsNotConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, app.MsgRecordAlreadyExists, http.StatusConflict)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ApplyMutation(context.Background(), testMutation())
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNetworkUnavailable)
}

// ── Sync ────────────────────────────────────────────────────────────────────

func TestSyncStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/status", r.URL.Path)
		_, _ = utils.WriteJSON(w, map[string]any{
			"has_changes_since_last_sync": true,
			"last_data_change_date":       "2026-03-01T09:30:00Z",
			"last_sync_date":              nil,
		}, http.StatusOK)
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL).SyncStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.HasChangesSinceLastSync)
	require.NotNil(t, status.LastDataChangeDate)
	assert.Nil(t, status.LastSyncDate)
}

func TestTriggerSync_Deferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync", r.URL.Path)

		var req models.SyncRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Force)
		assert.True(t, req.Backup)

		_, _ = utils.WriteJSON(w, models.SyncResult{Deferred: true}, http.StatusAccepted)
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).TriggerSync(context.Background(), models.SyncRequest{
		SyncTargets: models.SyncTargets{Backup: true},
		Force:       true,
	})
	require.NoError(t, err)
	assert.True(t, res.Deferred)
	assert.False(t, res.Synced)
}

func TestTriggerSync_Concurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, app.MsgSyncInProgress, http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).TriggerSync(context.Background(), models.SyncRequest{})
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Backups ─────────────────────────────────────────────────────────────────

func TestUploadBackup_RawBody(t *testing.T) {
	archive := []byte("archive-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/upload", r.URL.Path)
		assert.Equal(t, "merge", r.URL.Query().Get("mode"))
		assert.Equal(t, "application/gzip", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, archive, body)

		_, _ = utils.WriteJSON(w, models.RestoreResult{Mode: models.RestoreMerge, Success: true, Applied: true}, http.StatusOK)
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).UploadBackup(context.Background(), archive, models.RestoreMerge)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, models.RestoreMerge, res.Mode)
}

func TestUploadBackup_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, app.MsgMalformedSnapshot, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadBackup(context.Background(), []byte("x"), models.RestoreReplace)
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestDownload_FileName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/gzip")
		w.Header().Set("Content-Disposition", `attachment; filename="snapshot-user-1.tar.gz"`)
		_, _ = w.Write([]byte("gz"))
	}))
	defer srv.Close()

	data, name, err := newTestAdapter(t, srv.URL).Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("gz"), data)
	assert.Equal(t, "snapshot-user-1.tar.gz", name)
}

func TestListBackups_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/backups", r.URL.Path)
		_, _ = utils.WriteJSON(w, []models.FileRef{{Name: "b"}, {Name: "a"}}, http.StatusOK)
	}))
	defer srv.Close()

	refs, err := newTestAdapter(t, srv.URL).ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "b", refs[0].Name)
}

func TestRestoreStored_PathAndMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/backups/snapshot-1.tar.gz/restore", r.URL.Path)
		assert.Equal(t, "preview", r.URL.Query().Get("mode"))
		_, _ = utils.WriteJSON(w, models.RestoreResult{Mode: models.RestorePreview, Success: true}, http.StatusOK)
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).RestoreStored(context.Background(), "snapshot-1.tar.gz", models.RestorePreview)
	require.NoError(t, err)
	assert.False(t, res.Applied)
}

func TestRestoreStored_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, app.MsgBackupNotFound, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).RestoreStored(context.Background(), "missing", models.RestoreReplace)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://sync.example.com/", want: "https://sync.example.com"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToken_SetAndTrim(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	assert.Equal(t, "token-1", a.Token())

	a.SetToken("  other  ")
	assert.Equal(t, "other", a.Token())
}
