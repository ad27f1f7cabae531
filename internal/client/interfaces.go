// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable command line application.
type Client interface {
	// Run executes the command named by the process arguments.
	Run() error
}

// Clipboard receives revealed messages when --copy is set.
type Clipboard interface {
	WriteAll(text string) error
}

// PasswordReader asks the user for a password.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
