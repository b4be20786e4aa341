// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/filevault/client-go/internal/adapter"
)

// transportSentinels are the adapter errors that may carry a server-supplied
// message in their wrap.
var transportSentinels = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrInternalServerError,
}

// serverMessage extracts the server-provided error text from a transport
// error of the form "<sentinel>: <body>". Returns "" when the server sent no
// body or the error is not a transport error.
func serverMessage(err error) string {
	for _, sentinel := range transportSentinels {
		if !errors.Is(err, sentinel) {
			continue
		}
		prefix := sentinel.Error() + ": "
		if full := err.Error(); strings.HasPrefix(full, prefix) {
			return strings.TrimSpace(full[len(prefix):])
		}
		return ""
	}
	return ""
}

// mapAuthError translates a login/register failure into the single message
// shown to the user: the server's own error text when it supplied one, the
// generic fallback otherwise.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}
	if msg := serverMessage(err); msg != "" {
		return errors.New(msg)
	}
	return ErrAuthFallback
}

// mapRemoveError surfaces the server's error text verbatim when present,
// matching the deletion flow of the reference client; otherwise the generic
// removal message.
func mapRemoveError(err error) error {
	if err == nil {
		return nil
	}
	if msg := serverMessage(err); msg != "" {
		return errors.New(msg)
	}
	return ErrRemoveFailed
}
