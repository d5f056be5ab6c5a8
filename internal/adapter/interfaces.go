// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client note
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx answers come back as [*StatusError], which unwraps to a category
// such as [ErrConflict] or [ErrUnauthorized] for [errors.Is] checks.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Only encrypted records cross it; implementations never see
// plaintext.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// CreateNote uploads a new note and returns it with server timestamps
	// and the owner taken from the token.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote replaces the title and encrypted record of note.NoteID.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// ListNotes returns the caller's notes, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	DeleteNote(ctx context.Context, noteID string) error

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
