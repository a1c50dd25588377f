// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-sync/internal/logger"
)

// newBufferedHandler returns a Handler whose logger writes JSON into buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID_ReusesHeader(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/sync/status", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-from-client", entry["trace_id"])
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})

	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestWithTraceID_IndependentPerRequest(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first, second := httptest.NewRecorder(), httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
