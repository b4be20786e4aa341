package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes by mapHTTPError.
// When the server supplied an error body, the sentinel is wrapped as
// "<sentinel>: <body>" so callers can both match with [errors.Is] and
// surface the server's own wording.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMissingEncryptionKey is returned by FetchKey when the key service
	// answered 200 but the DataEncryptionKey field is absent or empty.
	ErrMissingEncryptionKey = errors.New("missing encryption key in response")
)
