// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyDerivationInput is returned by DeriveKey when the secret or
	// the context string is empty.
	ErrEmptyDerivationInput = errors.New("empty input for key derivation")

	// ErrMalformedCiphertext is returned by Decrypt when the ciphertext
	// does not have the expected envelope structure.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)

// opensslMagic is the header of the passphrase envelope:
// base64("Salted__" ‖ salt[8] ‖ AES-256-CBC ciphertext).
const opensslMagic = "Salted__"

const (
	saltLen = 8
	keyLen  = 32 // AES-256
	ivLen   = aes.BlockSize
)

// keyChainService is the private implementation of [KeyChainService].
//
// The ciphertext format is the OpenSSL passphrase envelope, chosen so blobs
// already stored by the reference client remain decryptable: an 8-byte random
// salt is prepended after the "Salted__" magic, and the AES-256 key and IV
// are stretched from (passphrase, salt) with the MD5-based EVP_BytesToKey
// schedule. CBC with PKCS#7 padding, Base64 standard encoding on the
// outside. The envelope carries no authentication tag; that limitation is
// deliberate and documented on [KeyChainService.Decrypt].
type keyChainService struct{}

// NewKeyChainService constructs a [KeyChainService]. The implementation is
// stateless; a single instance can be shared freely.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// DeriveKey implements [KeyChainService]. It concatenates secret and context,
// hashes the result with SHA-256, and returns the lowercase hex digest as the
// key material.
func (k *keyChainService) DeriveKey(secret, context string) (string, error) {
	if secret == "" || context == "" {
		return "", ErrEmptyDerivationInput
	}

	digest := sha256.Sum256([]byte(secret + context))
	return hex.EncodeToString(digest[:]), nil
}

// Encrypt implements [KeyChainService]. A fresh random salt is drawn on every
// call, so encrypting the same plaintext twice under the same key yields
// different ciphertext strings; both decrypt back to the plaintext.
func (k *keyChainService) Encrypt(plaintext []byte, key string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	aesKey, iv := evpBytesToKey([]byte(key), salt)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	blob := make([]byte, 0, len(opensslMagic)+saltLen+len(ciphertext))
	blob = append(blob, opensslMagic...)
	blob = append(blob, salt...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [KeyChainService]. It reverses Encrypt: decode the
// Base64 blob, split out the embedded salt, re-derive the AES key and IV from
// (key, salt), and strip the PKCS#7 padding after CBC decryption.
func (k *keyChainService) Decrypt(ciphertext string, key string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrMalformedCiphertext, err)
	}

	if len(blob) < len(opensslMagic)+saltLen || string(blob[:len(opensslMagic)]) != opensslMagic {
		return nil, fmt.Errorf("%w: missing salt header", ErrMalformedCiphertext)
	}

	salt := blob[len(opensslMagic) : len(opensslMagic)+saltLen]
	body := blob[len(opensslMagic)+saltLen:]
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrMalformedCiphertext, len(body))
	}

	aesKey, iv := evpBytesToKey([]byte(key), salt)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body)

	unpadded, err := unpadPKCS7(plaintext)
	if err != nil {
		// Almost always a wrong key, but indistinguishable from a
		// corrupted blob without an authentication tag.
		return nil, err
	}

	return unpadded, nil
}

// evpBytesToKey stretches (passphrase, salt) into an AES-256 key and IV using
// the OpenSSL EVP_BytesToKey schedule with MD5 and one round:
// D_i = MD5(D_{i-1} ‖ passphrase ‖ salt), concatenated until 48 bytes are
// available.
func evpBytesToKey(passphrase, salt []byte) (aesKey, iv []byte) {
	var derived, prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func padPKCS7(data []byte) []byte {
	padding := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

func unpadPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrMalformedCiphertext)
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > aes.BlockSize || padding > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrMalformedCiphertext)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: invalid padding", ErrMalformedCiphertext)
		}
	}

	return data[:len(data)-padding], nil
}
