// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

// NewNoteService returns the note service backed by noteRepository. Input is
// expected to be validated by a wrapper such as [NewNoteValidationService].
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("owner_id", created.OwnerID).
		Str("note_id", created.NoteID).
		Msg("note created")
	return created, nil
}

func (n *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	return updated, nil
}

func (n *noteService) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	note, err := n.noteRepository.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

func (n *noteService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (n *noteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := n.noteRepository.DeleteNote(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("owner_id", ownerID).
		Str("note_id", noteID).
		Msg("note deleted")
	return nil
}
