// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notes client runtime.
//
// Without arguments it runs the interactive browser together with the vault
// expiry worker. Subcommands (list, new, open, edit, delete, unlock, status)
// cover the same operations for scripts.
package client
