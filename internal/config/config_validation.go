// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidWalletConfigs  = errors.New("invalid wallet configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
)

// Unlock methods accepted by APP_UNLOCK_METHOD.
const (
	UnlockPassword = "password"
	UnlockWallet   = "wallet"
)

// validate checks invariants shared by both binaries. Binary specific
// requirements live in the [ServerConfig] and [ClientConfig] views.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.UnlockMethod {
	case "", UnlockPassword, UnlockWallet:
	default:
		return fmt.Errorf("%w: unknown unlock method %q", ErrInvalidAppConfigs, cfg.App.UnlockMethod)
	}

	if cfg.Vault.IdleTimeout < 0 || cfg.Wallet.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: set an HTTP or gRPC address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	// the cache must survive restarts
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: a SQLite file path is required", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return fmt.Errorf("%w: server URL and request timeout are required", ErrInvalidAdapterConfigs)
	}

	if cfg.App.Token == "" {
		return fmt.Errorf("%w: bearer token is required", ErrInvalidAppConfigs)
	}

	if cfg.App.UnlockMethod == UnlockWallet && cfg.Wallet.RPCURL == "" && cfg.Wallet.KeyFile == "" {
		return fmt.Errorf("%w: wallet unlock needs an RPC URL or a key file", ErrInvalidWalletConfigs)
	}

	return nil
}
