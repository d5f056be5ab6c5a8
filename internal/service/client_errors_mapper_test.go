package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-vault/internal/adapter"
	"github.com/MKhiriev/go-notes-vault/internal/app"
	"github.com/MKhiriev/go-notes-vault/internal/store"
)

func status(code int, body string) error {
	return &adapter.StatusError{Code: code, Body: body}
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"bad request", status(http.StatusBadRequest, app.MsgInvalidNoteID), ErrInvalidDataProvided},
		{"too large", status(http.StatusRequestEntityTooLarge, app.MsgNoteTooLarge), ErrNoteTooLarge},
		{"expired", status(http.StatusUnauthorized, app.MsgTokenIsExpired), ErrTokenIsExpired},
		{"invalid token", status(http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"not found", status(http.StatusNotFound, app.MsgNoteNotFound), store.ErrNoteNotFound},
		{"conflict", status(http.StatusConflict, app.MsgNoteAlreadyExists), store.ErrNoteAlreadyExists},
		{"wrapped status", fmt.Errorf("get note: %w", status(http.StatusNotFound, "")), store.ErrNoteNotFound},
		{"internal", status(http.StatusInternalServerError, "boom"), adapter.ErrServerFailure},
		{"transport", errors.New("get note request: dial tcp: refused"), ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
