// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/crypto"
	"github.com/MKhiriev/go-notes-vault/models"
)

// verifierText is sealed into the profile on first use. Opening it proves
// the password matches the one the profile was created with.
const verifierText = "go-notes-vault/verifier/v1"

type passwordSource struct {
	prompter Prompter
	profiles ProfileStore
	envelope crypto.Envelope
	now      func() time.Time
}

// NewPasswordSource returns a [SecretSource] that prompts for the vault
// password and checks it against the local profile. The first successful
// prompt creates the profile.
func NewPasswordSource(prompter Prompter, profiles ProfileStore, envelope crypto.Envelope) SecretSource {
	return &passwordSource{
		prompter: prompter,
		profiles: profiles,
		envelope: envelope,
		now:      time.Now,
	}
}

// Acquire implements [SecretSource].
func (p *passwordSource) Acquire(ctx context.Context) (string, error) {
	profile, err := p.profiles.LoadProfile(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errProfileUnavailable, err)
	}

	password, err := p.prompter.PromptPassword(ctx, profile == nil)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	if profile == nil {
		return password, p.createProfile(ctx, password)
	}

	text, err := p.envelope.Open(profile.Verifier, password)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if text != verifierText {
		return "", fmt.Errorf("verify password: %w", crypto.ErrAuthentication)
	}

	return password, nil
}

// HasProfile reports whether a password profile exists.
func (p *passwordSource) HasProfile(ctx context.Context) (bool, error) {
	profile, err := p.profiles.LoadProfile(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errProfileUnavailable, err)
	}
	return profile != nil, nil
}

func (p *passwordSource) createProfile(ctx context.Context, password string) error {
	verifier, err := p.envelope.Seal(verifierText, password)
	if err != nil {
		return fmt.Errorf("create verifier: %w", err)
	}

	profile := models.Profile{Verifier: verifier, CreatedAt: p.now().UTC()}
	if err = p.profiles.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("%w: save profile: %w", errProfileUnavailable, err)
	}

	return nil
}
