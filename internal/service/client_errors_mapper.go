// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-vault/internal/adapter"
	"github.com/MKhiriev/go-notes-vault/internal/app"
	"github.com/MKhiriev/go-notes-vault/internal/store"
)

// mapAdapterError translates an adapter error into a service error.
// Non-2xx answers without a business meaning are returned unchanged;
// anything that is not a status error means the server was not reached.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrNoteTooLarge
	case errors.Is(err, adapter.ErrUnauthorized):
		if statusErr.Body == app.MsgTokenIsExpired {
			return ErrTokenIsExpired
		}
		return ErrTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound
	case errors.Is(err, adapter.ErrConflict):
		return store.ErrNoteAlreadyExists
	}

	return err
}
