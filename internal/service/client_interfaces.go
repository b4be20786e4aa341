// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side business layer of the vault:
// the authentication flow and the transfer orchestrator that composes the
// key service, key derivation, and the cipher codec into upload, download,
// list, and remove operations.
//
// Every operation converts its failure into a single human-readable error
// for the caller; underlying causes are logged. No operation retries, and a
// failed operation commits no partial state.
package service

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// Operation identifies one of the four vault transfer operations for
// in-flight tracking.
type Operation string

const (
	OpUpload   Operation = "upload"
	OpDownload Operation = "download"
	OpList     Operation = "list"
	OpRemove   Operation = "remove"
)

// ClientAuthService handles registration, login, and logout against the
// vault server.
type ClientAuthService interface {
	// Register creates a new account. The e-mail is lowercased before it is
	// sent. Returns the server's success message.
	Register(ctx context.Context, name, email, password string) (string, error)

	// Login authenticates the user. Before the returned token is stored,
	// its embedded username claim is checked against the submitted e-mail;
	// on mismatch no token is stored and ErrTokenUsernameMismatch is
	// returned. Returns the server's success message.
	Login(ctx context.Context, email, password string) (string, error)

	// Logout clears the stored bearer token.
	Logout()
}

// ClientVaultService is the transfer orchestrator. Calls for the same user
// are not serialized: two concurrent uploads of the same (username, filename)
// may race at the blob store and the last write observed by the store wins.
// The per-operation in-flight flags exist so the UI can debounce duplicate
// submissions; they are advisory, not a lock.
type ClientVaultService interface {
	// Upload encrypts content and stores it under (username, filename).
	// Returns the success message built from the server-echoed filename.
	Upload(ctx context.Context, content []byte, filename, username string) (string, error)

	// Download fetches, decrypts, and writes the named file into the
	// download directory. Returns the path written. On any failure nothing
	// is written to disk.
	Download(ctx context.Context, username, filename string) (string, error)

	// List returns the user's filenames in the order the server emitted
	// them. An empty vault yields an empty slice, not an error.
	List(ctx context.Context, username string) ([]string, error)

	// Remove deletes the named file record. Callers re-run List afterwards
	// to refresh their view.
	Remove(ctx context.Context, username, filename string) error

	// InFlight reports whether an invocation of op is currently running.
	InFlight(op Operation) bool
}
