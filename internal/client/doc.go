// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the stego channel command line application.
//
// It maps cobra commands onto the client services: hide, reveal, capacity
// and analyze run locally (or on a server with --remote), exchange performs
// the key agreement with a server and stores the result in a key file, and
// history inspects the local SQLite audit trail.
package client
