// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/filevault/client-go/internal/config"
	"github.com/filevault/client-go/internal/logger"
	"github.com/filevault/client-go/internal/utils"
	"github.com/filevault/client-go/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	uuidGen *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, uuidGen: utils.NewUUIDGenerator(), logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.RegisterResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var out models.RegisterResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	return out, nil
}

// Login implements [ServerAdapter]. The returned token is handed to the
// caller unverified and unstored; storing it is the auth service's decision.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	return out, nil
}

// FetchKey implements [ServerAdapter].
func (h *httpServerAdapter) FetchKey(ctx context.Context, username string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("username", username).
		Get("/getkey")
	if err != nil {
		return "", fmt.Errorf("fetch key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out models.KeyResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode key response: %w", err)
	}
	if out.DataEncryptionKey == "" {
		return "", ErrMissingEncryptionKey
	}

	return out.DataEncryptionKey, nil
}

// UploadFile implements [ServerAdapter]. The ciphertext travels as a regular
// multipart form field named "file", matching what the blob store expects.
func (h *httpServerAdapter) UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"file":     req.Ciphertext,
			"username": req.Username,
			"filename": req.Filename,
		}).
		Post("/fileup")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var out models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return out, nil
}

// DownloadFile implements [ServerAdapter]. The response body is the raw
// ciphertext text, not JSON.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, req models.DownloadRequest) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/filedown")
	if err != nil {
		return "", fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// ListFiles implements [ServerAdapter]. The listing endpoint returns a JSON
// object keyed by filename; since Go maps would lose the server's key order,
// the body is walked token by token instead.
func (h *httpServerAdapter) ListFiles(ctx context.Context, req models.ListRequest) ([]models.FileRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/fileget")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	records, err := parseFileListing(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return records, nil
}

// DeleteFile implements [ServerAdapter].
func (h *httpServerAdapter) DeleteFile(ctx context.Context, req models.DeleteRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/filedel")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares an outgoing request with the context, a fresh
// request id, and the bearer token when one is set.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.uuidGen.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// parseFileListing decodes a JSON object of filename → metadata into records
// that preserve the object's key order.
func parseFileListing(body []byte) ([]models.FileRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	records := make([]models.FileRecord, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		var meta json.RawMessage
		if err = dec.Decode(&meta); err != nil {
			return nil, err
		}

		records = append(records, models.FileRecord{Name: name, Metadata: meta})
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}

	return records, nil
}

// mapHTTPError translates a non-2xx response into one of the package's
// sentinel errors. When the server supplied an error body (either plain text
// or the {"error": "..."} shape), it is preserved in the wrap so the service
// layer can surface it verbatim.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var er models.ErrorResponse
	if json.Unmarshal(resp.Body(), &er) == nil && er.Error != "" {
		body = er.Error
	}

	var sentinel error
	switch code {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}

	if body == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, body)
}
