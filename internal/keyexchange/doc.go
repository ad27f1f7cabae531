// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyexchange agrees a 32-byte channel secret between two parties
// with ephemeral ECDH over P-256.
//
// # Session lifecycle
//
//	Created --LocalPublicKey--> AwaitingRemote --Complete--> Completed
//	   |                              |
//	   +------------Fail--------------+-----------> Failed
//
// A [Session] is single use. Completed and Failed are terminal; once the
// secret is derived the private key is dropped and the raw ECDH output is
// zeroized.
//
// # Derivation
//
// The shared point is expanded with HKDF-SHA256. The HKDF salt is the two
// uncompressed public keys, lexicographically smaller first, so both sides
// get the same salt without agreeing on roles. The info string is
// "stego-channel/ecdh/v1".
//
// # Security
//
// The exchange is unauthenticated: nothing binds a public key to an
// identity, so an active man in the middle can run two sessions and read
// everything. Callers that need peer authentication must compare key
// fingerprints out of band.
//
// # Registry
//
// [Registry] is the server-side store of sessions that wait for the peer
// and of derived secrets waiting to be used. Entries expire after a TTL and
// are wiped by [Registry.Sweep].
package keyexchange
