// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Error categories returned by this package. Every error leaving the package
// wraps exactly one of them, so callers match with [errors.Is].
var (
	// ErrDerivation is returned when a key cannot be derived: the secret is
	// empty, the salt has the wrong length, or the crypto provider (random
	// source included) fails.
	ErrDerivation = errors.New("key derivation failed")

	// ErrEncoding is returned for malformed records: bad base64, an IV that
	// is not 12 bytes, a truncated ciphertext, a malformed salt, or plaintext
	// that is not valid UTF-8.
	ErrEncoding = errors.New("malformed encrypted record")

	// ErrAuthentication is returned when AES-GCM rejects the ciphertext.
	// A wrong key and a tampered record cannot be told apart.
	ErrAuthentication = errors.New("record authentication failed")
)
