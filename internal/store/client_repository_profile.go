// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/models"
)

// profileRepository stores the local profile: the profile salt and the
// verifier record sealed with it. It satisfies vault.ProfileStore.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs the SQLite profile store.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *profileRepository) LoadProfile(ctx context.Context) (*models.Profile, error) {
	query, args, err := buildSelectProfileQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(
		&profile.Verifier.EncryptedContent,
		&profile.Verifier.IV,
		&profile.Verifier.Salt,
		&profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.LoadProfile").
			Msg("failed to read local profile")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &profile, nil
}

func (p *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	query, args, err := buildInsertProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.SaveProfile").
			Msg("failed to save local profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
