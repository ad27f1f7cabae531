// Package config loads, merges and validates configuration for the stego
// channel server and CLI.
//
// The server configuration is assembled from multiple sources (later
// sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI, which takes its flags from cobra and reads
// only env and the JSON file.
package config
