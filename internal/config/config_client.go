package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout      = 30 * time.Second
	defaultWalletTimeout       = 2 * time.Minute
	defaultExpiryCheckInterval = 30 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Token is the bearer token sent to the notes server.
	Token string
	// UnlockMethod is [UnlockPassword] or [UnlockWallet].
	UnlockMethod string
	// LogFile is the client log path. Empty means a "logs" file next to
	// the executable.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the notes server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file used for the profile and the notes cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ExpiryCheckInterval defines how often the vault is checked for idle
	// expiry.
	ExpiryCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Vault   Vault
	Wallet  Wallet
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	// Command is the subcommand and its arguments.
	Command []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:        cfg.App.Token,
			UnlockMethod: cfg.App.UnlockMethod,
			LogFile:      cfg.App.LogFile,
		},
		Vault:  cfg.Vault,
		Wallet: cfg.Wallet,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			ExpiryCheckInterval: cfg.Workers.ExpiryCheckInterval,
		},
		Command: cfg.Command,
	}

	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.UnlockMethod == "" {
		cfg.App.UnlockMethod = UnlockPassword
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Wallet.Timeout == 0 {
		cfg.Wallet.Timeout = defaultWalletTimeout
	}
	if cfg.Workers.ExpiryCheckInterval == 0 {
		cfg.Workers.ExpiryCheckInterval = defaultExpiryCheckInterval
	}
}
