package store

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the server-side note store. Every operation is scoped
// by owner; the note body is stored exactly as received.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// UpdateNote replaces title and encrypted record of an existing note.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error)
	// ListNotes returns the owner's notes, newest first.
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}

// LocalNoteRepository is the client-side cache of encrypted notes.
type LocalNoteRepository interface {
	// SaveNotes inserts or replaces the given notes by id.
	SaveNotes(ctx context.Context, notes ...models.Note) error
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}

// ProfileRepository keeps the single local profile.
type ProfileRepository interface {
	// LoadProfile returns nil and no error when no profile exists yet.
	LoadProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
}

// ErrorClassificator decides whether a failed operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
