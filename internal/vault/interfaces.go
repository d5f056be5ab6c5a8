package vault

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/models"
)

// SecretSource produces the user secret the vault keys are derived from.
// Implementations may block on user interaction.
type SecretSource interface {
	Acquire(ctx context.Context) (string, error)
}

// Prompter asks the user for the vault password. firstUse selects the
// "set a password" wording over "enter your password". A cancelled prompt
// returns [ErrPromptCancelled].
type Prompter interface {
	PromptPassword(ctx context.Context, firstUse bool) (string, error)
}

// ProfileStore persists the local password profile.
type ProfileStore interface {
	// LoadProfile returns nil and no error when no profile exists yet.
	LoadProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
}
