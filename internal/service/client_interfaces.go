package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// NoteVault seals and opens note bodies. It is satisfied by *vault.Session.
type NoteVault interface {
	SaveNote(ctx context.Context, plaintext string) (models.EncryptedRecord, error)
	OpenNote(ctx context.Context, record models.EncryptedRecord) (string, error)
}

// IdleLocker locks a vault whose secret has been idle for too long.
type IdleLocker interface {
	// ExpireIdle reports whether the call locked the vault.
	ExpireIdle() bool
}

// IDGenerator hands out new note identifiers.
type IDGenerator interface {
	Generate() string
}

// ClientNoteService manages the user's notes from the client side. Note
// bodies are sealed before they leave the process; the server and the local
// cache only ever receive encrypted records.
type ClientNoteService interface {
	// Create seals plaintext under a fresh note id, uploads it and caches
	// the stored copy.
	Create(ctx context.Context, title *string, plaintext string) (models.Note, error)

	// Update reseals plaintext for an existing note. The new record replaces
	// the previous one on the server and in the cache.
	Update(ctx context.Context, noteID string, title *string, plaintext string) (models.Note, error)

	// Open returns the note and its decrypted body. The cache is tried
	// before the server.
	Open(ctx context.Context, noteID string) (models.Note, string, error)

	// List returns the notes newest first without decrypting them. When the
	// server is unreachable the cached notes are returned together with
	// ErrServerUnavailable.
	List(ctx context.Context) ([]models.Note, error)

	// Delete removes the note from the server and the cache.
	Delete(ctx context.Context, noteID string) error
}

// VaultExpiryJob locks the vault in the background once its idle timeout
// has passed.
type VaultExpiryJob interface {
	// Start checks the vault every interval, defaulting to 30 seconds if
	// interval is zero or negative. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
