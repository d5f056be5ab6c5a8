package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-vault/internal/app"
	"github.com/MKhiriev/go-notes-vault/internal/service"
	"github.com/MKhiriev/go-notes-vault/internal/store"
	"github.com/MKhiriev/go-notes-vault/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching entry wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{validators.ErrInvalidNoteID, errorResponse{http.StatusBadRequest, app.MsgInvalidNoteID}},
	{validators.ErrEmptyEncryptedContent, errorResponse{http.StatusBadRequest, app.MsgEmptyEncryptedContent}},
	{validators.ErrEmptyIV, errorResponse{http.StatusBadRequest, app.MsgEmptyIV}},
	{service.ErrValidationNoOwnerID, errorResponse{http.StatusBadRequest, app.MsgNoOwnerIDProvided}},
	{validators.ErrInvalidOwnerID, errorResponse{http.StatusBadRequest, app.MsgNoOwnerIDProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
	{store.ErrNoteAlreadyExists, errorResponse{http.StatusConflict, app.MsgNoteAlreadyExists}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError writes a plain text error. Internal errors never leak their
// text to the client.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
