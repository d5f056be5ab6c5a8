package service

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService stores encrypted notes on behalf of an owner. It never sees
// plaintext and treats the encrypted record as opaque.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}

// AuthService verifies bearer tokens issued for the notes API.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
