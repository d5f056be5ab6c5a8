// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import "errors"

var (
	// ErrExternalAgent is the category of every error returned by an [Agent].
	ErrExternalAgent = errors.New("wallet agent error")

	// ErrRejected means the user declined the request in the wallet.
	ErrRejected = errors.New("request rejected by user")

	// ErrAgentUnavailable means no wallet answered: not configured, not
	// reachable, or timed out.
	ErrAgentUnavailable = errors.New("wallet agent is unavailable")

	// ErrNoAccounts means the wallet answered but exposed no account.
	ErrNoAccounts = errors.New("wallet exposed no accounts")

	// ErrAccountMismatch means the signer was asked to sign for an address
	// it does not hold.
	ErrAccountMismatch = errors.New("wallet account mismatch")
)
