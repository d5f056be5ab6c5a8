package crypto

import (
	"encoding/base64"

	"github.com/MKhiriev/go-notes-vault/models"
)

type envelope struct {
	kdf   KeyDerivation
	codec Codec
}

// NewEnvelope combines kdf and codec into the per-record salt scheme: every
// Seal derives a new key from a new salt.
func NewEnvelope(kdf KeyDerivation, codec Codec) Envelope {
	return &envelope{kdf: kdf, codec: codec}
}

// Seal implements [Envelope].
func (e *envelope) Seal(plaintext, secret string) (models.EncryptedRecord, error) {
	key, salt, err := e.kdf.Derive(secret, nil)
	if err != nil {
		return models.EncryptedRecord{}, err
	}
	defer key.Destroy()

	record, err := e.codec.Encrypt(plaintext, key)
	if err != nil {
		return models.EncryptedRecord{}, err
	}
	record.Salt = base64.StdEncoding.EncodeToString(salt)

	return record, nil
}

// Open implements [Envelope].
func (e *envelope) Open(record models.EncryptedRecord, secret string) (string, error) {
	salt, err := DecodeSalt(record)
	if err != nil {
		return "", err
	}

	key, _, err := e.kdf.Derive(secret, salt)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	return e.codec.Decrypt(record, key)
}
