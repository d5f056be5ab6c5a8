package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-vault/internal/validators"
	"github.com/MKhiriev/go-notes-vault/models"
)

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// NoteValidationService rejects malformed input before it reaches the
// wrapped NoteService. Every rejection wraps [ErrInvalidDataProvided] and
// the validator error that caused it.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator[models.Note]
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, invalid("note validation before create", err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, invalid("note validation before update", err)
	}

	return v.inner.UpdateNote(ctx, note)
}

func (v *NoteValidationService) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	if err := v.validateKey(ctx, ownerID, noteID); err != nil {
		return models.Note{}, invalid("note key validation", err)
	}

	return v.inner.GetNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	if ownerID == "" {
		return nil, invalid("list validation", ErrValidationNoOwnerID)
	}

	return v.inner.ListNotes(ctx, ownerID)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := v.validateKey(ctx, ownerID, noteID); err != nil {
		return invalid("note key validation", err)
	}

	return v.inner.DeleteNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) validateKey(ctx context.Context, ownerID, noteID string) error {
	key := models.Note{OwnerID: ownerID, NoteID: noteID}
	return v.validator.Validate(ctx, key, validators.FieldOwnerID, validators.FieldNoteID)
}

func invalid(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidDataProvided, err)
}
