// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// stdProvider is the [Provider] backed by x/crypto/pbkdf2 and AES-GCM from
// the standard library.
type stdProvider struct {
	random io.Reader
}

// NewStdProvider returns the default [Provider]. Randomness comes from the
// OS CSPRNG.
func NewStdProvider() Provider {
	return &stdProvider{random: rand.Reader}
}

// DeriveKey implements [Provider].
func (p *stdProvider) DeriveKey(secret, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations <= 0 || keyLen <= 0 {
		return nil, fmt.Errorf("invalid pbkdf2 parameters: iterations=%d key_len=%d", iterations, keyLen)
	}
	return pbkdf2.Key(secret, salt, iterations, keyLen, sha256.New), nil
}

// RandomBytes implements [Provider].
func (p *stdProvider) RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// Seal implements [Provider].
func (p *stdProvider) Seal(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", gcm.NonceSize(), len(iv))
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// Open implements [Provider].
func (p *stdProvider) Open(key, iv, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", gcm.NonceSize(), len(iv))
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("gcm open: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
