// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-vault/models"
)

type codec struct {
	provider Provider
}

// NewCodec returns the AES-256-GCM [Codec].
func NewCodec(provider Provider) Codec {
	return &codec{provider: provider}
}

// Encrypt implements [Codec]. Plaintext that is not valid UTF-8 is
// [ErrEncoding] and nothing is sealed.
func (c *codec) Encrypt(plaintext string, key *DerivedKey) (models.EncryptedRecord, error) {
	if !utf8.ValidString(plaintext) {
		return models.EncryptedRecord{}, fmt.Errorf("%w: plaintext is not valid utf-8", ErrEncoding)
	}

	iv, err := c.provider.RandomBytes(IVSize)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: generate iv: %w", ErrDerivation, err)
	}

	var ciphertext []byte
	err = key.with(func(raw []byte) error {
		var sealErr error
		ciphertext, sealErr = c.provider.Seal(raw, iv, []byte(plaintext))
		return sealErr
	})
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: seal: %w", ErrDerivation, err)
	}

	return models.EncryptedRecord{
		EncryptedContent: base64.StdEncoding.EncodeToString(ciphertext),
		IV:               base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt implements [Codec].
//
// Structural problems with the record are reported as [ErrEncoding] before
// the key is touched. Anything the AEAD rejects is [ErrAuthentication].
func (c *codec) Decrypt(record models.EncryptedRecord, key *DerivedKey) (string, error) {
	ciphertext, iv, err := decodeRecord(record)
	if err != nil {
		return "", err
	}

	var plaintext []byte
	err = key.with(func(raw []byte) error {
		var openErr error
		plaintext, openErr = c.provider.Open(raw, iv, ciphertext)
		if openErr != nil {
			return fmt.Errorf("%w: %w", ErrAuthentication, openErr)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrEncoding)
	}

	return string(plaintext), nil
}

// DecodeSalt returns the raw salt carried by record. A record without a
// salt, or with a salt that is not [SaltSize] bytes of base64, is
// [ErrEncoding].
func DecodeSalt(record models.EncryptedRecord) ([]byte, error) {
	if !record.HasSalt() {
		return nil, fmt.Errorf("%w: record has no salt", ErrEncoding)
	}

	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %w", ErrEncoding, err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrEncoding, SaltSize, len(salt))
	}

	return salt, nil
}

func decodeRecord(record models.EncryptedRecord) ([]byte, []byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(record.EncryptedContent)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode ciphertext: %w", ErrEncoding, err)
	}
	if len(ciphertext) < TagSize {
		return nil, nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrEncoding)
	}

	iv, err := base64.StdEncoding.DecodeString(record.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode iv: %w", ErrEncoding, err)
	}
	if len(iv) != IVSize {
		return nil, nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrEncoding, IVSize, len(iv))
	}

	if record.HasSalt() {
		if _, err = DecodeSalt(record); err != nil {
			return nil, nil, err
		}
	}

	return ciphertext, iv, nil
}
