package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-notes-vault/models"

// Provider is the low-level cryptographic capability the vault is built on.
// It knows nothing about notes, records or encodings.
//
// The default implementation is returned by [NewStdProvider]. Tests inject
// failing or deterministic providers to exercise error paths.
type Provider interface {
	// DeriveKey runs PBKDF2-HMAC-SHA256 over secret and salt.
	DeriveKey(secret, salt []byte, iterations, keyLen int) ([]byte, error)

	// RandomBytes returns n bytes from a cryptographically secure source.
	RandomBytes(n int) ([]byte, error)

	// Seal encrypts plaintext with AES-GCM under key and iv. No additional
	// data is authenticated. The tag is appended to the ciphertext.
	Seal(key, iv, plaintext []byte) ([]byte, error)

	// Open reverses Seal. Any failure, including a tag mismatch, is returned
	// as an error.
	Open(key, iv, ciphertext []byte) ([]byte, error)
}

// KeyDerivation turns a user secret into an AES-256 key.
type KeyDerivation interface {
	// Derive returns the key derived from secret and salt together with the
	// salt that was used. A nil salt makes Derive generate a fresh one.
	Derive(secret string, salt []byte) (*DerivedKey, []byte, error)
}

// Codec converts note text to and from an [models.EncryptedRecord].
type Codec interface {
	// Encrypt seals plaintext under key with a fresh IV. The returned
	// record has an empty Salt; the caller attaches the salt it derived
	// the key with.
	Encrypt(plaintext string, key *DerivedKey) (models.EncryptedRecord, error)

	// Decrypt opens record with key and returns the UTF-8 plaintext.
	Decrypt(record models.EncryptedRecord, key *DerivedKey) (string, error)
}

// Envelope performs a full per-record seal or open from a secret.
type Envelope interface {
	// Seal derives a key from secret and a fresh salt, then encrypts
	// plaintext. The record carries its salt.
	Seal(plaintext, secret string) (models.EncryptedRecord, error)

	// Open derives the key from secret and the record's salt, then decrypts.
	Open(record models.EncryptedRecord, secret string) (string, error)
}
