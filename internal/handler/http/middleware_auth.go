// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/internal/utils"
)

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// withOwner resolves the bearer token to an owner id and scopes the request
// to it with [utils.WithOwnerID]. A request without a usable token never
// reaches a note handler.
func (h *Handler) withOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		raw, err := bearerToken(r)
		if err != nil {
			log.Warn().Err(err).Msg("request rejected")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.auth.ParseToken(r.Context(), raw)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			writeError(w, err)
			return
		}

		ownerLog := log.With().Str("owner_id", token.OwnerID).Logger()
		ctx := utils.WithOwnerID(r.Context(), token.OwnerID)
		next.ServeHTTP(w, r.WithContext(ownerLog.WithContext(ctx)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	raw, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return raw, nil
}
