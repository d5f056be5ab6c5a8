// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the configuration shared by the notes server and the
// notes client. Each binary reads the groups it needs through its own view
// ([GetServerConfig], [GetClientConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and unlock settings.
	App App `envPrefix:"APP_"`

	// Vault holds client vault session settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Wallet holds the wallet agent used by the wallet unlock method.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Storage holds the database settings. The server expects a PostgreSQL
	// DSN, the client a SQLite file path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses of the notes server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds how the client reaches the notes server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file, set by CONFIG or -c.
	JSONFilePath string `env:"CONFIG"`

	// Command holds the positional arguments left after flag parsing.
	Command []string
}

// App holds application-level settings.
type App struct {
	// TokenSignKey verifies bearer tokens on the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Token is the bearer token the client presents to the server.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// UnlockMethod is "password" or "wallet".
	// Env: APP_UNLOCK_METHOD
	UnlockMethod string `env:"UNLOCK_METHOD"`

	// LogFile is where the client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is reported by the server's /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault holds client vault session settings.
type Vault struct {
	// IdleTimeout locks the vault after this long without use. Zero keeps
	// the secret until the process exits.
	// Env: VAULT_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// Wallet configures the wallet agent. RPCURL takes precedence over KeyFile.
type Wallet struct {
	// RPCURL is a JSON-RPC wallet bridge endpoint.
	// Env: WALLET_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// KeyFile is a file with a hex secp256k1 private key for the local
	// signer.
	// Env: WALLET_KEY_FILE
	KeyFile string `env:"KEY_FILE"`

	// Timeout bounds a single connect-and-sign exchange.
	// Env: WALLET_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Storage groups storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string.
type DB struct {
	// DSN is a PostgreSQL URL on the server and a SQLite file on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the REST API listen address, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health service listen address, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout caps a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthInterval is how often the gRPC health service pings the database.
	// Env: SERVER_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Adapter holds outbound settings of the client.
type Adapter struct {
	// HTTPAddress is the notes server base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// ExpiryCheckInterval is how often the client checks the vault for idle
	// expiry.
	// Env: WORKERS_EXPIRY_CHECK_INTERVAL
	ExpiryCheckInterval time.Duration `env:"EXPIRY_CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration from, in increasing
// priority:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path taken from 1 or 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
