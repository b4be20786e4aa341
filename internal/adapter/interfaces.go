// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote vault: the key service that issues the per-user encryption
// secret and the blob store that keeps the ciphertext records.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/filevault/client-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The adapter is also the session credential holder: exactly one bearer
// token per process, set at login and cleared at logout. There is no refresh
// or rotation; if the server rejects the token the user has to log in again.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to the
	// Authorization header of all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ClearToken removes the stored token; subsequent requests go out
	// unauthenticated. Called at logout.
	ClearToken()

	// Register sends POST /register with the user's name, username, and
	// password. Returns the server's success message, or an error carrying
	// the server's own error text when it supplied one.
	Register(ctx context.Context, user models.User) (models.RegisterResponse, error)

	// Login sends POST /login and returns the raw response. The adapter
	// does NOT store the returned token: the auth service first checks the
	// token's embedded username against the submitted e-mail and only then
	// calls SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// FetchKey retrieves the per-user encryption secret from
	// GET /getkey?username=… . The secret is never cached by anyone; the
	// service layer calls this fresh before every cipher operation so the
	// key material always reflects the server's current value.
	FetchKey(ctx context.Context, username string) (string, error)

	// UploadFile sends the ciphertext and its (username, filename) identity
	// to POST /fileup as a multipart form. Returns the server-echoed
	// filename on success.
	UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// DownloadFile sends POST /filedown and returns the raw ciphertext text
	// body.
	DownloadFile(ctx context.Context, req models.DownloadRequest) (string, error)

	// ListFiles sends POST /fileget and returns the file records in the
	// order the server emitted them. An empty object response yields an
	// empty slice, not an error.
	ListFiles(ctx context.Context, req models.ListRequest) ([]models.FileRecord, error)

	// DeleteFile sends POST /filedel. On failure the returned error wraps
	// the server's error body when one was provided.
	DeleteFile(ctx context.Context, req models.DeleteRequest) error
}
