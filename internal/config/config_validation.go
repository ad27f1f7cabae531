// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
	"github.com/MKhiriev/go-stego-channel/internal/crypto"
)

const (
	DefaultVersion        = "dev"
	DefaultTokenIssuer    = "stego-channel"
	DefaultSessionTTL     = 10 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultSweepInterval  = time.Minute
	DefaultClientDSN      = "stego_history.db"
	DefaultAdapterAddress = "localhost:8080"

	// minTokenSignKeyLen is the HS256 key length floor (256 bits).
	minTokenSignKeyLen = 32
)

// applyDefaults fills fields that no source set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	cfg.Channel.applyDefaults()
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = DefaultSweepInterval
	}
}

func (c *Channel) applyDefaults() {
	if c.KDF == "" {
		c.KDF = string(crypto.AlgorithmPBKDF2)
	}
	if c.Iterations == 0 {
		c.Iterations = crypto.DefaultIterations(crypto.Algorithm(c.KDF))
	}
	if c.BitsPerUnit == 0 {
		c.BitsPerUnit = carrier.DefaultBitsPerUnit
	}
}

// validate checks the merged server configuration. All failing groups are
// reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if err := cfg.Channel.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(cfg.App.TokenSignKey) < minTokenSignKeyLen {
		errs = append(errs, fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLen))
	}
	if cfg.App.SessionTTL < 0 {
		errs = append(errs, fmt.Errorf("%w: negative session ttl", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs))
	}

	if cfg.Workers.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: sweep interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

func (c *Channel) validate() error {
	alg := crypto.Algorithm(c.KDF)
	if _, err := crypto.NewDeriver(alg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChannelConfigs, err)
	}
	if floor := crypto.MinIterations(alg); c.Iterations < floor {
		return fmt.Errorf("%w: %d iterations for %s, minimum %d", ErrInvalidChannelConfigs, c.Iterations, alg, floor)
	}
	if c.BitsPerUnit < 1 || c.BitsPerUnit > carrier.MaxBitsPerUnit {
		return fmt.Errorf("%w: bits per unit %d, want 1..%d", ErrInvalidChannelConfigs, c.BitsPerUnit, carrier.MaxBitsPerUnit)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	var errs []error

	if err := cfg.Channel.validate(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs))
	}
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: address and timeout are required", ErrInvalidAdapterConfigs))
	}

	return errors.Join(errs...)
}
