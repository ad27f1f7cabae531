// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the stego channel
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env);
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds versioning, session token and key exchange settings.
	App App `envPrefix:"APP_"`

	// Channel holds the key derivation and embedding density settings
	// shared by hide and reveal.
	Channel Channel `envPrefix:"CHANNEL_"`

	// Storage holds the operation history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for HTTP and gRPC.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote server used by the CLI.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey signs key exchange session tokens (HS256).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionTTL bounds how long a key exchange session and its derived
	// secret stay in the server registry (e.g. "10m").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// LogPath is the CLI log file. Empty means next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Channel configures the cryptographic pipeline.
type Channel struct {
	// KDF is "pbkdf2" or "argon2id".
	// Env: CHANNEL_KDF
	KDF string `env:"KDF"`

	// Iterations is the PBKDF2 round count or the Argon2id time cost.
	// Env: CHANNEL_ITERATIONS
	Iterations int `env:"ITERATIONS"`

	// BitsPerUnit is the default embedding density (1 or 2).
	// Env: CHANNEL_BITS_PER_UNIT
	BitsPerUnit int `env:"BITS_PER_UNIT"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the history database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the history database. A postgres://
// DSN selects PostgreSQL; anything else is opened as a SQLite file.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transports.
type Server struct {
	// HTTPAddress is the HTTP listen address, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC listen address, "host:port". Empty disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout caps a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote server settings used by the CLI exchange command.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// SweepInterval is how often expired key exchange sessions are evicted.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads the server configuration. Sources are merged
// in this order, a later non-zero field overriding an earlier one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields still empty, then the result is validated.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
