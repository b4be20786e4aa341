package models

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	// Token is the compact JWT issued for the session. Its payload carries
	// a "username" claim that the client checks against the submitted
	// e-mail before storing the token.
	Token string `json:"token"`

	// Message is the human-readable success message to show the user.
	Message string `json:"message"`
}

// RegisterResponse is the body returned by POST /register.
type RegisterResponse struct {
	Message string `json:"message"`
}

// KeyResponse is the body returned by GET /getkey. DataEncryptionKey is the
// per-user secret used as input to key derivation; it is fetched fresh for
// every cipher operation and never cached.
type KeyResponse struct {
	DataEncryptionKey string `json:"DataEncryptionKey"`
}

// UploadResponse is the body returned by POST /fileup. FileName echoes the
// name under which the server stored the ciphertext.
type UploadResponse struct {
	FileName string `json:"file_name"`
}

// ErrorResponse is the error body shape the vault server uses for
// login/register failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
