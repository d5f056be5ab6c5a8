// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_IsDeterministic(t *testing.T) {
	kdf := NewKeyDerivation(NewStdProvider())
	salt := bytes.Repeat([]byte{0x42}, SaltSize)

	k1, s1, err := kdf.Derive("correct-horse", salt)
	require.NoError(t, err)
	k2, s2, err := kdf.Derive("correct-horse", salt)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.True(t, k1.Equal(k2))
}

func TestDerive_SaltSensitivity(t *testing.T) {
	kdf := NewKeyDerivation(NewStdProvider())
	salt := make([]byte, SaltSize)
	other := make([]byte, SaltSize)
	other[SaltSize-1] = 1

	k1, _, err := kdf.Derive("correct-horse", salt)
	require.NoError(t, err)
	k2, _, err := kdf.Derive("correct-horse", other)
	require.NoError(t, err)

	assert.False(t, k1.Equal(k2))
}

func TestDerive_SecretSensitivity(t *testing.T) {
	kdf := NewKeyDerivation(NewStdProvider())
	salt := make([]byte, SaltSize)

	k1, _, err := kdf.Derive("password-a", salt)
	require.NoError(t, err)
	k2, _, err := kdf.Derive("password-b", salt)
	require.NoError(t, err)

	assert.False(t, k1.Equal(k2))
}

func TestDerive_GeneratesSaltWhenAbsent(t *testing.T) {
	kdf := NewKeyDerivation(NewStdProvider())

	_, s1, err := kdf.Derive("secret", nil)
	require.NoError(t, err)
	_, s2, err := kdf.Derive("secret", nil)
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestDerive_Errors(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		secret   string
		salt     []byte
	}{
		{
			name:     "empty secret",
			provider: NewStdProvider(),
			secret:   "",
			salt:     make([]byte, SaltSize),
		},
		{
			name:     "short salt",
			provider: NewStdProvider(),
			secret:   "secret",
			salt:     make([]byte, 8),
		},
		{
			name:     "empty non-nil salt",
			provider: NewStdProvider(),
			secret:   "secret",
			salt:     []byte{},
		},
		{
			name:     "random source unavailable",
			provider: &stubProvider{Provider: NewStdProvider(), randomErr: errors.New("no entropy")},
			secret:   "secret",
			salt:     nil,
		},
		{
			name:     "provider derive failure",
			provider: &stubProvider{Provider: NewStdProvider(), deriveErr: errors.New("provider gone")},
			secret:   "secret",
			salt:     make([]byte, SaltSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, salt, err := NewKeyDerivation(tt.provider).Derive(tt.secret, tt.salt)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDerivation)
			assert.Nil(t, key)
			assert.Nil(t, salt)
		})
	}
}

func TestDerivedKey_DestroyedKeyIsUnusable(t *testing.T) {
	kdf := NewKeyDerivation(NewStdProvider())
	key, _, err := kdf.Derive("secret", make([]byte, SaltSize))
	require.NoError(t, err)

	key.Destroy()

	_, err = NewCodec(NewStdProvider()).Encrypt("text", key)
	assert.ErrorIs(t, err, ErrDerivation)
	assert.False(t, key.Equal(key))
}
