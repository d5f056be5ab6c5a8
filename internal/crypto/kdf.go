// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
)

// Key derivation and cipher parameters. Changing Iterations, SaltSize or
// KeySize makes every stored record unreadable.
const (
	Iterations = 100_000
	SaltSize   = 16
	KeySize    = 32
	IVSize     = 12
	TagSize    = 16
)

type keyDerivation struct {
	provider Provider
}

// NewKeyDerivation returns the PBKDF2-HMAC-SHA256 [KeyDerivation].
func NewKeyDerivation(provider Provider) KeyDerivation {
	return &keyDerivation{provider: provider}
}

// Derive implements [KeyDerivation].
//
// The same secret and salt always give the same key. A nil salt is replaced
// by [SaltSize] fresh random bytes; any other salt must be exactly
// [SaltSize] bytes long.
func (d *keyDerivation) Derive(secret string, salt []byte) (*DerivedKey, []byte, error) {
	if secret == "" {
		return nil, nil, fmt.Errorf("%w: empty secret", ErrDerivation)
	}

	if salt == nil {
		fresh, err := d.provider.RandomBytes(SaltSize)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: generate salt: %w", ErrDerivation, err)
		}
		salt = fresh
	}
	if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrDerivation, SaltSize, len(salt))
	}

	raw, err := d.provider.DeriveKey([]byte(secret), salt, Iterations, KeySize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDerivation, err)
	}
	if len(raw) != KeySize {
		return nil, nil, fmt.Errorf("%w: provider returned %d byte key", ErrDerivation, len(raw))
	}

	return newDerivedKey(raw), salt, nil
}
