// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Algorithm names a password-based key derivation function.
type Algorithm string

const (
	// AlgorithmPBKDF2 is PBKDF2-HMAC-SHA256; iterations is the round count.
	AlgorithmPBKDF2 Algorithm = "pbkdf2"
	// AlgorithmArgon2id is Argon2id; iterations is the time cost.
	AlgorithmArgon2id Algorithm = "argon2id"
)

const (
	// SaltSize is the length of a KDF salt in bytes.
	SaltSize = 16
	// KeySize is the length of each derived subkey in bytes.
	KeySize = 32

	MinPBKDF2Iterations     = 100_000
	DefaultPBKDF2Iterations = 600_000
	MinArgon2Time           = 1
	DefaultArgon2Time       = 3

	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4

	fingerprintLabel = "artifact-fingerprint"
)

// KeyMaterial is the output of a single derivation. It must not outlive the
// hide or reveal call that produced it; call Wipe when done.
type KeyMaterial struct {
	EncryptionKey     []byte
	AuthenticationKey []byte
	Salt              []byte
	Iterations        int
	Algorithm         Algorithm
}

// Wipe zeroizes both subkeys.
func (k *KeyMaterial) Wipe() {
	if k == nil {
		return
	}
	Zero(k.EncryptionKey)
	Zero(k.AuthenticationKey)
}

// Fingerprint returns a short hex tag of the authentication subkey. Hide and
// reveal of one artifact yield the same fingerprint, which lets history
// records be correlated without storing key bytes.
func (k *KeyMaterial) Fingerprint() string {
	mac := hmac.New(sha256.New, k.AuthenticationKey)
	mac.Write([]byte(fingerprintLabel))
	return hex.EncodeToString(mac.Sum(nil)[:16])
}

// MatchesFingerprint reports in constant time whether fp was produced by k.
func (k *KeyMaterial) MatchesFingerprint(fp string) bool {
	return hmac.Equal([]byte(k.Fingerprint()), []byte(fp))
}

type kdf struct {
	algorithm Algorithm
	memory    uint32
	threads   uint8
}

// NewDeriver returns a [Deriver] for the named algorithm. An empty name
// selects PBKDF2.
func NewDeriver(algorithm Algorithm) (Deriver, error) {
	switch algorithm {
	case "", AlgorithmPBKDF2:
		return &kdf{algorithm: AlgorithmPBKDF2}, nil
	case AlgorithmArgon2id:
		return &kdf{algorithm: AlgorithmArgon2id, memory: argonMemory, threads: argonThreads}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// MinIterations returns the lowest cost accepted for algorithm.
func MinIterations(algorithm Algorithm) int {
	if algorithm == AlgorithmArgon2id {
		return MinArgon2Time
	}
	return MinPBKDF2Iterations
}

// DefaultIterations returns the cost used when configuration leaves it unset.
func DefaultIterations(algorithm Algorithm) int {
	if algorithm == AlgorithmArgon2id {
		return DefaultArgon2Time
	}
	return DefaultPBKDF2Iterations
}

func (k *kdf) Algorithm() Algorithm {
	return k.algorithm
}

func (k *kdf) Derive(ctx context.Context, secret, salt []byte, iterations int) (*KeyMaterial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if iterations < MinIterations(k.algorithm) {
		return nil, fmt.Errorf("%w: %s cost %d is below minimum %d",
			ErrWeakParameters, k.algorithm, iterations, MinIterations(k.algorithm))
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrWeakParameters)
	}

	if salt == nil {
		salt = make([]byte, SaltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
	} else {
		if len(salt) != SaltSize {
			return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrWeakParameters, SaltSize, len(salt))
		}
		salt = append([]byte(nil), salt...)
	}

	// the worker owns its copy of the secret so a cancelled caller may wipe
	// the original right away
	own := append([]byte(nil), secret...)
	out := make(chan []byte, 1)
	go func() {
		defer Zero(own)
		out <- k.stretch(own, salt, iterations)
	}()

	select {
	case <-ctx.Done():
		go func() { Zero(<-out) }()
		return nil, ctx.Err()
	case key := <-out:
		return &KeyMaterial{
			EncryptionKey:     key[:KeySize:KeySize],
			AuthenticationKey: key[KeySize:],
			Salt:              salt,
			Iterations:        iterations,
			Algorithm:         k.algorithm,
		}, nil
	}
}

func (k *kdf) stretch(secret, salt []byte, iterations int) []byte {
	if k.algorithm == AlgorithmArgon2id {
		return argon2.IDKey(secret, salt, uint32(iterations), k.memory, k.threads, 2*KeySize)
	}
	return pbkdf2.Key(secret, salt, iterations, 2*KeySize, sha256.New)
}
