package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		host        string
		port        int
	}{
		{name: "localhost", input: "localhost:8080", host: "localhost", port: 8080},
		{name: "ipv4", input: "127.0.0.1:9090", host: "127.0.0.1", port: 9090},
		{name: "all interfaces", input: ":8080", host: "", port: 8080},
		{name: "hostname rejected", input: "example.com:80", expectError: true},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, addr.Host)
			assert.Equal(t, tt.port, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://localhost/db",
		"-config", "/etc/stego.json",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-session-ttl", "20m",
		"-request-timeout", "10s",
		"-kdf", "argon2id",
		"-iterations", "5",
		"-bits-per-unit", "2",
		"-sweep-interval", "30s",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/stego.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 20*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, Channel{KDF: "argon2id", Iterations: 5, BitsPerUnit: 2}, cfg.Channel)
	assert.Equal(t, 30*time.Second, cfg.Workers.SweepInterval)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})

	assert.Error(t, err)
}
