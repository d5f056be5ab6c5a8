// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-vault/internal/app"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/utils"
	"github.com/MKhiriev/go-notes-vault/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	note, ok := readNote(w, r, "*Handler.createNote")
	if !ok {
		return
	}
	note.OwnerID = ownerID

	created, err := h.notes.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Str("note_id", note.NoteID).Msg("error creating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	note, ok := readNote(w, r, "*Handler.updateNote")
	if !ok {
		return
	}
	// the path names the note; the body cannot retarget the update
	note.NoteID = chi.URLParam(r, "noteID")
	note.OwnerID = ownerID

	updated, err := h.notes.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("note_id", note.NoteID).Msg("error updating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	noteID := chi.URLParam(r, "noteID")

	note, err := h.notes.GetNote(ctx, ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Str("note_id", noteID).Msg("error getting note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.ListNotes(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	noteID := chi.URLParam(r, "noteID")

	if err := h.notes.DeleteNote(ctx, ownerID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("note_id", noteID).Msg("error deleting note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ownerFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, found := utils.OwnerID(r.Context())
	if !found {
		logger.FromRequest(r).Error().Msg("no owner ID in request context")
		http.Error(w, app.MsgNoOwnerIDProvided, http.StatusBadRequest)
		return "", false
	}
	return ownerID, true
}

func readNote(w http.ResponseWriter, r *http.Request, funcName string) (models.Note, bool) {
	var note models.Note
	err := utils.ReadJSON(w, r, &note)
	if err == nil {
		return note, true
	}

	logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
	if errors.Is(err, utils.ErrBodyTooLarge) {
		http.Error(w, app.MsgNoteTooLarge, http.StatusRequestEntityTooLarge)
		return models.Note{}, false
	}
	http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	return models.Note{}, false
}
