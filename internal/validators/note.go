package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/internal/utils"
	"github.com/MKhiriev/go-notes-vault/models"
)

// Field names accepted by [NoteValidator.Validate] to scope validation.
const (
	FieldNoteID           = "note_id"
	FieldOwnerID          = "owner_id"
	FieldEncryptedContent = "encrypted_content"
	FieldIV               = "iv"
)

// NoteValidator checks that a note carries the fields a store needs.
//
// It checks presence and shape only. The encrypted body is opaque here:
// nothing is base64 decoded and the salt is optional.
type NoteValidator struct {
}

var allNoteFields = []string{FieldNoteID, FieldOwnerID, FieldEncryptedContent, FieldIV}

func NewNoteValidator() Validator[models.Note] {
	return &NoteValidator{}
}

// Validate reports the first failing field in the order given.
func (v *NoteValidator) Validate(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = allNoteFields
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if !utils.IsUUID(note.NoteID) {
				return ErrInvalidNoteID
			}
		case FieldOwnerID:
			if note.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldEncryptedContent:
			if note.EncryptedContent == "" {
				return ErrEmptyEncryptedContent
			}
		case FieldIV:
			if note.IV == "" {
				return ErrEmptyIV
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
