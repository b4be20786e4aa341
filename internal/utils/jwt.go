package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ParseUsernameFromJWT decodes the payload of a compact JWT token and returns
// its "username" claim.
//
// The signature is NOT verified: the client has no key material to verify
// with, and only needs to read the claim to cross-check the login response
// against the e-mail the user submitted. The server remains the authority on
// token validity.
//
// Returns an error if the token cannot be decoded or the claim is missing or
// empty.
func ParseUsernameFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", errors.New("username claim is missing")
	}

	return username, nil
}
