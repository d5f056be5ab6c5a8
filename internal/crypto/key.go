// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/awnumar/memguard"
)

var errKeyDestroyed = errors.New("derived key is destroyed")

// DerivedKey is a 256-bit AES key held in a memguard enclave. The raw bytes
// never leave this package; a key can only be used through a [Codec].
type DerivedKey struct {
	enclave *memguard.Enclave
}

// newDerivedKey seals raw into an enclave. raw is wiped.
func newDerivedKey(raw []byte) *DerivedKey {
	return &DerivedKey{enclave: memguard.NewEnclave(raw)}
}

// Destroy drops the enclave reference. A destroyed key fails every
// subsequent use with [ErrDerivation].
func (k *DerivedKey) Destroy() {
	if k == nil {
		return
	}
	k.enclave = nil
}

// Equal reports whether both keys hold the same bytes. The comparison is
// constant time.
func (k *DerivedKey) Equal(other *DerivedKey) bool {
	var equal bool
	_ = k.with(func(a []byte) error {
		return other.with(func(b []byte) error {
			equal = subtle.ConstantTimeCompare(a, b) == 1
			return nil
		})
	})
	return equal
}

// with opens the enclave for the duration of fn and destroys the plaintext
// buffer afterwards.
func (k *DerivedKey) with(fn func(raw []byte) error) error {
	if k == nil || k.enclave == nil {
		return fmt.Errorf("%w: %w", ErrDerivation, errKeyDestroyed)
	}

	buf, err := k.enclave.Open()
	if err != nil {
		return fmt.Errorf("%w: open key enclave: %w", ErrDerivation, err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}
