package config

import (
	"fmt"
)

// ClientConfig is the CLI view of the configuration. The CLI parses its own
// flags with cobra, so only env and the JSON file are read here.
type ClientConfig struct {
	// Channel holds the KDF and density the CLI uses for local hide/reveal.
	Channel Channel
	// Adapter is the remote server used by the exchange command.
	Adapter Adapter
	// Storage is the local history database (SQLite).
	Storage Storage
	// LogPath is the CLI log file.
	LogPath string
}

// GetClientConfig loads env, then jsonPath when non-empty (falling back to
// the CONFIG variable), applies client defaults and validates the result.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()
	if jsonPath == "" {
		b = b.withJSON()
	} else {
		b = b.withJSONFile(jsonPath)
	}

	cfg, err := b.merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultClientDSN
	}
	cfg.applyDefaults()

	clientCfg := &ClientConfig{
		Channel: cfg.Channel,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		LogPath: cfg.App.LogPath,
	}

	return clientCfg, clientCfg.validate()
}
