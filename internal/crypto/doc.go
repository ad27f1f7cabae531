// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-derived key schedule and the
// authenticated payload cipher of the steganographic channel.
//
// # Key derivation
//
// [Deriver] stretches a secret into 64 bytes using PBKDF2-HMAC-SHA256 or
// Argon2id. The first 32 bytes become [KeyMaterial.EncryptionKey], the last
// 32 bytes [KeyMaterial.AuthenticationKey]. The salt is generated for every
// hide and travels inside the frame, so reveal can regenerate the same keys.
//
// # Frames
//
// [Seal] encrypts with ChaCha20-Poly1305 under a fresh random 96-bit nonce
// and returns a [Frame]:
//
//	version(1) || nonce(12) || salt(16) || len(4, big-endian) || ciphertext || tag(16)
//
// [Open] verifies the tag before any plaintext is returned. Callers match
// failures with errors.Is against [ErrAuthenticationFailed],
// [ErrMalformedFrame] and [ErrUnsupportedFormatVersion].
//
// Nothing in this package logs or keeps state between calls.
package crypto
