package service

import (
	"context"
	"strings"

	"github.com/filevault/client-go/internal/adapter"
	"github.com/filevault/client-go/internal/logger"
	"github.com/filevault/client-go/internal/utils"
	"github.com/filevault/client-go/internal/validators"
	"github.com/filevault/client-go/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, validator: validator, logger: logger}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	user := models.User{Name: name, Username: strings.ToLower(email), Password: password}

	if err := a.validator.Validate(ctx, user); err != nil {
		return "", err
	}

	resp, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Error().Err(err).Str("username", user.Username).Msg("register on server")
		return "", mapAuthError(err)
	}

	return resp.Message, nil
}

// Login implements [ClientAuthService]. The token from the login response is
// decoded locally (no signature check) and its username claim must equal the
// submitted e-mail; only then is the token stored in the adapter.
func (a *clientAuthService) Login(ctx context.Context, email, password string) (string, error) {
	user := models.User{Username: strings.ToLower(email), Password: password}

	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		return "", err
	}

	resp, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Error().Err(err).Str("username", user.Username).Msg("login on server")
		return "", mapAuthError(err)
	}

	if resp.Token == "" {
		return "", ErrEmptyToken
	}

	usernameInToken, err := utils.ParseUsernameFromJWT(resp.Token)
	if err != nil {
		a.logger.Error().Err(err).Msg("decode login token")
		return "", ErrAuthFallback
	}
	if usernameInToken != user.Username {
		a.logger.Warn().
			Str("submitted", user.Username).
			Str("in_token", usernameInToken).
			Msg("token username mismatch, token discarded")
		return "", ErrTokenUsernameMismatch
	}

	a.adapter.SetToken(resp.Token)

	return resp.Message, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout() {
	a.adapter.ClearToken()
}
