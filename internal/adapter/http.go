// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-expense-sync/internal/config"
	"github.com/MKhiriev/go-expense-sync/internal/logger"
	"github.com/MKhiriev/go-expense-sync/internal/utils"
	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "Hash"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Request bodies are signed when appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	a.SetToken(appCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [ServerAdapter] with GET /ping.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrNetworkUnavailable, err)
	}
	return mapHTTPError(resp)
}

// ApplyMutation implements [ServerAdapter] with POST /mutations.
func (h *httpServerAdapter) ApplyMutation(ctx context.Context, mutation models.Mutation) error {
	req, err := h.jsonRequest(ctx, mutation)
	if err != nil {
		return err
	}

	resp, err := req.Post("/mutations")
	if err != nil {
		return fmt.Errorf("%w: apply mutation: %w", ErrNetworkUnavailable, err)
	}
	return mapHTTPError(resp)
}

// SyncStatus implements [ServerAdapter] with GET /sync/status.
func (h *httpServerAdapter) SyncStatus(ctx context.Context) (models.ChangeStatus, error) {
	var status models.ChangeStatus

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/sync/status")
	if err != nil {
		return models.ChangeStatus{}, fmt.Errorf("%w: sync status: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangeStatus{}, err
	}

	return status, nil
}

// TriggerSync implements [ServerAdapter] with POST /sync. A deferred sync
// is answered with 202 and decoded like a completed one.
func (h *httpServerAdapter) TriggerSync(ctx context.Context, syncReq models.SyncRequest) (models.SyncResult, error) {
	req, err := h.jsonRequest(ctx, syncReq)
	if err != nil {
		return models.SyncResult{}, err
	}

	var result models.SyncResult
	resp, err := req.SetResult(&result).Post("/sync")
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: trigger sync: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResult{}, err
	}

	return result, nil
}

// UploadBackup implements [ServerAdapter] with POST /sync/upload, sending
// the archive as the raw body.
func (h *httpServerAdapter) UploadBackup(ctx context.Context, archive []byte, mode models.RestoreMode) (models.RestoreResult, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/gzip").
		SetQueryParam("mode", string(mode)).
		SetBody(archive)
	h.sign(req, archive)

	var result models.RestoreResult
	resp, err := req.SetResult(&result).Post("/sync/upload")
	if err != nil {
		return models.RestoreResult{}, fmt.Errorf("%w: upload backup: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RestoreResult{}, err
	}

	return result, nil
}

// Download implements [ServerAdapter] with GET /sync/download. The file
// name is taken from Content-Disposition.
func (h *httpServerAdapter) Download(ctx context.Context) ([]byte, string, error) {
	resp, err := h.authedRequest(ctx).Get("/sync/download")
	if err != nil {
		return nil, "", fmt.Errorf("%w: download: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	name := "snapshot.tar.gz"
	if _, params, parseErr := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); parseErr == nil && params["filename"] != "" {
		name = params["filename"]
	}

	return resp.Body(), name, nil
}

// ListBackups implements [ServerAdapter] with GET /sync/backups.
func (h *httpServerAdapter) ListBackups(ctx context.Context) ([]models.FileRef, error) {
	resp, err := h.authedRequest(ctx).Get("/sync/backups")
	if err != nil {
		return nil, fmt.Errorf("%w: list backups: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var refs []models.FileRef
	if err = json.Unmarshal(resp.Body(), &refs); err != nil {
		return nil, fmt.Errorf("decode backups response: %w", err)
	}
	return refs, nil
}

// RestoreStored implements [ServerAdapter] with
// POST /sync/backups/{name}/restore.
func (h *httpServerAdapter) RestoreStored(ctx context.Context, name string, mode models.RestoreMode) (models.RestoreResult, error) {
	var result models.RestoreResult

	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		SetQueryParam("mode", string(mode)).
		SetResult(&result).
		Post("/sync/backups/{name}/restore")
	if err != nil {
		return models.RestoreResult{}, fmt.Errorf("%w: restore backup: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RestoreResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// jsonRequest marshals body up front so the signed bytes are the sent bytes.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	h.sign(req, payload)

	return req, nil
}

func (h *httpServerAdapter) sign(req *resty.Request, body []byte) {
	if h.hasher != nil {
		req.SetHeader(HashHeader, h.hasher.SumHex(body))
	}
}
