package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Credential rule violations. The texts are shown to the user as-is.
	ErrNameRequired         = errors.New("Please enter a name")
	ErrEmailRequired        = errors.New("Please enter an email")
	ErrEmailInvalid         = errors.New("Please enter a valid email address")
	ErrPasswordRequired     = errors.New("Please enter a password")
	ErrPasswordTooShort     = errors.New("Password must be at least 8 characters long")
	ErrPasswordInvalidChars = errors.New("Password can only contain alphanumeric characters and special characters: !@#$%^&*")
)
