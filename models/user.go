package models

// User represents the account identity used for registration and login.
// The vault server identifies users by their e-mail address, which is
// lowercased before it is sent anywhere.
type User struct {
	// Name is the display name of the user. Only required at registration.
	Name string `json:"name,omitempty"`

	// Username is the user's e-mail address in lowercase form. It doubles
	// as the per-identity context string for key derivation.
	Username string `json:"username"`

	// Password is the plaintext password entered by the user. It is sent
	// to the server only inside login/register requests and is never
	// persisted client-side.
	Password string `json:"password"`
}
