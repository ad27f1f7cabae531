package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-session-ttl key exchange session lifetime (e.g. "10m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-kdf key derivation function: pbkdf2 or argon2id
//	-iterations KDF cost
//	-bits-per-unit default embedding density
//	-sweep-interval session sweep period
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress

		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		sessionTTL     time.Duration
		requestTimeout time.Duration
		kdf            string
		iterations     int
		bitsPerUnit    int
		sweepInterval  time.Duration
	)

	fs := flag.NewFlagSet("stego-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Key exchange session lifetime (e.g., 10m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&kdf, "kdf", "", "Key derivation function: pbkdf2 or argon2id")
	fs.IntVar(&iterations, "iterations", 0, "KDF iterations (pbkdf2) or time cost (argon2id)")
	fs.IntVar(&bitsPerUnit, "bits-per-unit", 0, "Default embedding density: 1 or 2")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired session sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			SessionTTL:   sessionTTL,
		},
		Channel: Channel{
			KDF:         kdf,
			Iterations:  iterations,
			BitsPerUnit: bitsPerUnit,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SweepInterval: sweepInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty, or an IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
