// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side cipher pipeline: derivation of
// symmetric key material from the server-issued per-user secret, and the
// passphrase-based AES codec applied to file content before upload and after
// download.
//
// The package knows nothing about the network or users. Both operations are
// pure functions of their inputs; no key material is retained between calls.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService is the client-side cipher pipeline.
//
// Scheme:
//
//	key        = DeriveKey(secret, username)     (per operation)
//	ciphertext = Encrypt(plaintext, key)
//	plaintext  = Decrypt(ciphertext, key)
type KeyChainService interface {
	// DeriveKey turns the server-issued secret and a per-identity context
	// string (the username) into symmetric key material: the hex form of
	// SHA-256(secret ‖ context). Deterministic: identical inputs always
	// yield identical output, which is what makes the encrypt/decrypt
	// round trip work. Returns ErrEmptyDerivationInput if either input is
	// empty.
	DeriveKey(secret, context string) (string, error)

	// Encrypt encrypts plaintext under the derived key material and returns
	// a self-contained ciphertext string; the random salt it embeds makes
	// two encryptions of the same plaintext differ. See the format note on
	// [keyChainService].
	Encrypt(plaintext []byte, key string) (string, error)

	// Decrypt reverses Encrypt. Only the ciphertext string and a key equal
	// to the one used at encryption time are needed. The envelope carries
	// no authentication tag, so decrypting with a wrong key is not
	// guaranteed to fail: it usually surfaces as a padding error but may
	// yield garbage bytes. Structural problems (bad base64, missing
	// magic, truncated blob, bad padding) return ErrMalformedCiphertext.
	Decrypt(ciphertext string, key string) ([]byte, error)
}
