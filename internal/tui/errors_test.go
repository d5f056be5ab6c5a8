package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/internal/vault"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"vault", fmt.Errorf("open: %w", vault.ErrUndecryptable), vault.ErrUndecryptable.Error()},
		{"offline", fmt.Errorf("%w: dial", service.ErrServerUnavailable), "The server is unavailable. Showing cached notes."},
		{"too large", service.ErrNoteTooLarge, "This note is too large to save."},
		{"missing", store.ErrNoteNotFound, "This note no longer exists."},
		{"unknown", errors.New("pq: connection reset"), "Something went wrong. Details are in the log."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorText(tt.err))
		})
	}
}
