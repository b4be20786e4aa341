package validators

import (
	"context"
	"regexp"

	"github.com/filevault/client-go/models"
)

// Field names accepted by [CredentialsValidator.Validate] for scoped
// validation.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

var (
	emailPattern    = regexp.MustCompile(`\S+@\S+\.\S+`)
	passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]+$`)
)

// CredentialsValidator validates registration and login credentials held in a
// [models.User]. With no field arguments all fields are checked; with field
// arguments only the named ones are.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a [CredentialsValidator].
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// Validate implements [Validator] for [models.User] values.
func (v *CredentialsValidator) Validate(_ context.Context, value any, fields ...string) error {
	user, ok := value.(models.User)
	if !ok {
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if user.Name == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if user.Username == "" {
				return ErrEmailRequired
			}
			if !emailPattern.MatchString(user.Username) {
				return ErrEmailInvalid
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrPasswordRequired
			}
			if len(user.Password) < 8 {
				return ErrPasswordTooShort
			}
			if !passwordCharset.MatchString(user.Password) {
				return ErrPasswordInvalidChars
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
