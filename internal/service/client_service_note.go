// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-vault/internal/adapter"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/models"
)

type clientNoteService struct {
	vault      NoteVault
	localStore store.LocalNoteRepository
	adapter    adapter.ServerAdapter
	ids        IDGenerator

	logger *logger.Logger
}

func NewClientNoteService(
	vault NoteVault,
	localStore store.LocalNoteRepository,
	serverAdapter adapter.ServerAdapter,
	ids IDGenerator,
	logger *logger.Logger,
) ClientNoteService {
	return &clientNoteService{
		vault:      vault,
		localStore: localStore,
		adapter:    serverAdapter,
		ids:        ids,
		logger:     logger,
	}
}

func (s *clientNoteService) Create(ctx context.Context, title *string, plaintext string) (models.Note, error) {
	record, err := s.vault.SaveNote(ctx, plaintext)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		NoteID:          s.ids.Generate(),
		Title:           title,
		EncryptedRecord: record,
	}

	stored, err := s.adapter.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("upload created note: %w", mapAdapterError(err))
	}

	s.cache(ctx, stored)
	return stored, nil
}

func (s *clientNoteService) Update(ctx context.Context, noteID string, title *string, plaintext string) (models.Note, error) {
	record, err := s.vault.SaveNote(ctx, plaintext)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		NoteID:          noteID,
		Title:           title,
		EncryptedRecord: record,
	}

	stored, err := s.adapter.UpdateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("upload updated note: %w", mapAdapterError(err))
	}

	s.cache(ctx, stored)
	return stored, nil
}

func (s *clientNoteService) Open(ctx context.Context, noteID string) (models.Note, string, error) {
	note, err := s.localStore.GetNote(ctx, noteID)
	if err != nil {
		if !errors.Is(err, store.ErrNoteNotFound) {
			s.logger.Warn().Err(err).Str("note_id", noteID).Msg("local cache read failed")
		}

		note, err = s.adapter.GetNote(ctx, noteID)
		if err != nil {
			return models.Note{}, "", fmt.Errorf("download note: %w", mapAdapterError(err))
		}
		s.cache(ctx, note)
	}

	plaintext, err := s.vault.OpenNote(ctx, note.EncryptedRecord)
	if err != nil {
		return note, "", err
	}

	return note, plaintext, nil
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if !errors.Is(mapped, ErrServerUnavailable) {
			return nil, fmt.Errorf("list notes: %w", mapped)
		}

		cached, cacheErr := s.localStore.ListNotes(ctx)
		if cacheErr != nil {
			return nil, fmt.Errorf("list cached notes: %w", errors.Join(mapped, cacheErr))
		}
		return cached, mapped
	}

	s.refreshCache(ctx, notes)
	return notes, nil
}

func (s *clientNoteService) Delete(ctx context.Context, noteID string) error {
	if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
		mapped := mapAdapterError(err)
		if !errors.Is(mapped, store.ErrNoteNotFound) {
			return fmt.Errorf("delete note on server: %w", mapped)
		}
	}

	if err := s.localStore.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete cached note: %w", err)
	}

	return nil
}

// cache stores the note locally. The server copy is authoritative, so a
// cache failure is logged and otherwise ignored.
func (s *clientNoteService) cache(ctx context.Context, notes ...models.Note) {
	if err := s.localStore.SaveNotes(ctx, notes...); err != nil {
		s.logger.Warn().Err(err).Int("count", len(notes)).Msg("could not cache notes locally")
	}
}

// refreshCache makes the local cache mirror the server listing.
func (s *clientNoteService) refreshCache(ctx context.Context, notes []models.Note) {
	onServer := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		onServer[n.NoteID] = struct{}{}
	}

	cached, err := s.localStore.ListNotes(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not read local cache")
		return
	}
	for _, n := range cached {
		if _, ok := onServer[n.NoteID]; ok {
			continue
		}
		if err = s.localStore.DeleteNote(ctx, n.NoteID); err != nil {
			s.logger.Warn().Err(err).Str("note_id", n.NoteID).Msg("could not drop stale cached note")
		}
	}

	if len(notes) > 0 {
		s.cache(ctx, notes...)
	}
}
