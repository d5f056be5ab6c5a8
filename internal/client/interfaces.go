// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-notes-vault/internal/vault"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes args (a subcommand and its arguments) and blocks until
	// it is done. No args starts the interactive browser.
	Run(ctx context.Context, args []string) error
}

// Browser is the interactive notes UI.
type Browser interface {
	Browse(ctx context.Context) error
}

// Vault is the part of the vault session the client drives directly.
type Vault interface {
	State() vault.State
	Unlock(ctx context.Context) error
	Lock()
	HasProfile(ctx context.Context) (bool, error)
}

// VersionSource reports the notes server version.
type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

// Runner starts and stops the client's background workers.
type Runner interface {
	Run(ctx context.Context)
	Stop()
}
