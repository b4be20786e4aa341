package service

import (
	"errors"

	"github.com/filevault/client-go/internal/app"
)

// User-facing terminal errors. Every operation reports at most one of these
// (or a verbatim server message) to the caller; the underlying cause is
// logged, not surfaced.
var (
	ErrNoFileSelected        = errors.New(app.MsgSelectFileToUpload)
	ErrNoUserName            = errors.New(app.MsgEnterUserName)
	ErrDownloadArgsMissing   = errors.New(app.MsgDownloadArgsMissing)
	ErrRemoveArgsMissing     = errors.New(app.MsgRemoveArgsMissing)
	ErrUploadFailed          = errors.New(app.MsgUploadFailed)
	ErrDownloadFailed        = errors.New(app.MsgDownloadFailed)
	ErrListFailed            = errors.New(app.MsgListFailed)
	ErrRemoveFailed          = errors.New(app.MsgRemoveFailed)
	ErrEmptyToken            = errors.New(app.MsgEmptyToken)
	ErrTokenUsernameMismatch = errors.New(app.MsgTokenUsernameMismatch)
	ErrAuthFallback          = errors.New(app.MsgAuthFallback)
)
