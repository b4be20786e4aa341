package utils

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken builds an unsigned compact JWT with the given claims. The
// signature segment is junk on purpose: ParseUsernameFromJWT must not verify
// it.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	encode := func(v any) string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}

	header := encode(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := encode(claims)
	signature := base64.RawURLEncoding.EncodeToString([]byte("sig"))

	return strings.Join([]string{header, payload, signature}, ".")
}

func TestParseUsernameFromJWT_Success(t *testing.T) {
	token := makeToken(t, map[string]any{"username": "alice@example.com"})

	username, err := ParseUsernameFromJWT(token)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", username)
}

func TestParseUsernameFromJWT_MissingClaim(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "42"})

	_, err := ParseUsernameFromJWT(token)

	require.Error(t, err)
}

func TestParseUsernameFromJWT_EmptyClaim(t *testing.T) {
	token := makeToken(t, map[string]any{"username": ""})

	_, err := ParseUsernameFromJWT(token)

	require.Error(t, err)
}

func TestParseUsernameFromJWT_NotAToken(t *testing.T) {
	_, err := ParseUsernameFromJWT("definitely-not-a-jwt")

	require.Error(t, err)
}
