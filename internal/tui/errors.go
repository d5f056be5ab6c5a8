// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/internal/vault"
)

// errorText turns an error into a line that is safe to show. Vault errors
// already carry a user facing message; their cause is never shown.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	if msg, ok := vault.Message(err); ok {
		return msg
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "The server is unavailable. Showing cached notes."
	case errors.Is(err, service.ErrTokenIsExpired):
		return "Your access token has expired."
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your access token was rejected."
	case errors.Is(err, store.ErrNoteNotFound):
		return "This note no longer exists."
	case errors.Is(err, store.ErrNoteAlreadyExists):
		return "A note with this id already exists."
	case errors.Is(err, service.ErrNoteTooLarge):
		return "This note is too large to save."
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "The server rejected the note."
	default:
		return "Something went wrong. Details are in the log."
	}
}
