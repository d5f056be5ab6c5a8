package config

import (
	"fmt"
)

// ServerConfig is the notes server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	// Command is the subcommand and its arguments.
	Command []string
}

// GetServerConfig loads the merged configuration and validates the groups
// the notes server needs.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Command: cfg.Command,
	}

	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if err := serverCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating server config: %w", err)
	}

	return serverCfg, nil
}
