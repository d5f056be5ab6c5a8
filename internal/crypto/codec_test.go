// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deriveTestKey(t *testing.T, secret string) *DerivedKey {
	t.Helper()
	key, _, err := NewKeyDerivation(NewStdProvider()).Derive(secret, make([]byte, SaltSize))
	require.NoError(t, err)
	return key
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec(NewStdProvider())
	key := deriveTestKey(t, "correct-horse")

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "simple", plaintext: "Hello vault"},
		{name: "empty", plaintext: ""},
		{name: "unicode", plaintext: "заметка 📝 メモ"},
		{name: "multiline", plaintext: "line 1\nline 2\n\ttabbed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := c.Encrypt(tt.plaintext, key)
			require.NoError(t, err)
			assert.Empty(t, record.Salt)

			iv, err := base64.StdEncoding.DecodeString(record.IV)
			require.NoError(t, err)
			assert.Len(t, iv, IVSize)

			got, err := c.Decrypt(record, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestCodec_IVsAreUnique(t *testing.T) {
	c := NewCodec(NewStdProvider())
	key := deriveTestKey(t, "correct-horse")

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		record, err := c.Encrypt("same text", key)
		require.NoError(t, err)
		_, dup := seen[record.IV]
		require.False(t, dup, "iv reused at iteration %d", i)
		seen[record.IV] = struct{}{}
	}
}

func TestCodec_WrongKey(t *testing.T) {
	c := NewCodec(NewStdProvider())

	record, err := c.Encrypt("Hello vault", deriveTestKey(t, "password-a"))
	require.NoError(t, err)

	_, err = c.Decrypt(record, deriveTestKey(t, "password-b"))
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.NotErrorIs(t, err, ErrEncoding)
}

func TestCodec_TamperedCiphertext(t *testing.T) {
	c := NewCodec(NewStdProvider())
	key := deriveTestKey(t, "correct-horse")

	record, err := c.Encrypt("Hello vault", key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(record.EncryptedContent)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	record.EncryptedContent = base64.StdEncoding.EncodeToString(raw)

	_, err = c.Decrypt(record, key)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestCodec_MalformedRecords(t *testing.T) {
	c := NewCodec(NewStdProvider())
	key := deriveTestKey(t, "correct-horse")

	valid, err := c.Encrypt("Hello vault", key)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(r *models.EncryptedRecord)
	}{
		{
			name:   "ciphertext not base64",
			mutate: func(r *models.EncryptedRecord) { r.EncryptedContent = "%%%not-base64%%%" },
		},
		{
			name:   "iv not base64",
			mutate: func(r *models.EncryptedRecord) { r.IV = "@@" },
		},
		{
			name:   "iv wrong length",
			mutate: func(r *models.EncryptedRecord) { r.IV = base64.StdEncoding.EncodeToString(make([]byte, 16)) },
		},
		{
			name:   "ciphertext shorter than tag",
			mutate: func(r *models.EncryptedRecord) { r.EncryptedContent = base64.StdEncoding.EncodeToString([]byte("short")) },
		},
		{
			name:   "salt not base64",
			mutate: func(r *models.EncryptedRecord) { r.Salt = "!!salt!!" },
		},
		{
			name:   "salt wrong length",
			mutate: func(r *models.EncryptedRecord) { r.Salt = base64.StdEncoding.EncodeToString(make([]byte, 4)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			_, err := c.Decrypt(record, key)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEncoding)
			assert.NotErrorIs(t, err, ErrAuthentication)
		})
	}
}

func TestCodec_InvalidUTF8Plaintext(t *testing.T) {
	p := newStubProvider()
	p.open = func(_, _, _ []byte) ([]byte, error) {
		return []byte{0xff, 0xfe, 0xfd}, nil
	}
	c := NewCodec(p)
	key := deriveTestKey(t, "correct-horse")

	record, err := c.Encrypt("ignored", key)
	require.NoError(t, err)

	_, err = c.Decrypt(record, key)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestCodec_EncryptRejectsInvalidUTF8(t *testing.T) {
	p := newStubProvider()
	p.randomErr = errors.New("must not be called")
	key := deriveTestKey(t, "correct-horse")

	record, err := NewCodec(p).Encrypt("abc\xffdef", key)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
	assert.NotErrorIs(t, err, ErrDerivation)
	assert.Equal(t, models.EncryptedRecord{}, record)
}

func TestCodec_EncryptProviderFailures(t *testing.T) {
	key := deriveTestKey(t, "correct-horse")

	t.Run("random source", func(t *testing.T) {
		p := newStubProvider()
		p.randomErr = errors.New("no entropy")

		_, err := NewCodec(p).Encrypt("Hello vault", key)
		assert.ErrorIs(t, err, ErrDerivation)
	})

	t.Run("seal", func(t *testing.T) {
		p := newStubProvider()
		p.sealErr = errors.New("aead unavailable")

		_, err := NewCodec(p).Encrypt("Hello vault", key)
		assert.ErrorIs(t, err, ErrDerivation)
	})
}

func TestDecodeSalt(t *testing.T) {
	salt := make([]byte, SaltSize)
	salt[0] = 7

	got, err := DecodeSalt(models.EncryptedRecord{Salt: base64.StdEncoding.EncodeToString(salt)})
	require.NoError(t, err)
	assert.Equal(t, salt, got)

	_, err = DecodeSalt(models.EncryptedRecord{})
	assert.ErrorIs(t, err, ErrEncoding)
}
