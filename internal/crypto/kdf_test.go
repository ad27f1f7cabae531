// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func mustDeriver(t *testing.T, algorithm Algorithm) Deriver {
	t.Helper()
	d, err := NewDeriver(algorithm)
	if err != nil {
		t.Fatalf("NewDeriver(%q): %v", algorithm, err)
	}
	return d
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	d := mustDeriver(t, AlgorithmPBKDF2)
	salt := bytes.Repeat([]byte{0x42}, SaltSize)

	k1, err := d.Derive(context.Background(), []byte("correct horse"), salt, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("first derive: %v", err)
	}
	k2, err := d.Derive(context.Background(), []byte("correct horse"), salt, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("second derive: %v", err)
	}

	if !bytes.Equal(k1.EncryptionKey, k2.EncryptionKey) || !bytes.Equal(k1.AuthenticationKey, k2.AuthenticationKey) {
		t.Fatal("same secret, salt and iterations must give the same key material")
	}
	if k1.Fingerprint() != k2.Fingerprint() {
		t.Fatal("fingerprints differ for identical key material")
	}
	if !k2.MatchesFingerprint(k1.Fingerprint()) {
		t.Fatal("MatchesFingerprint rejected its own fingerprint")
	}
}

func TestDerive_SplitsSubkeys(t *testing.T) {
	d := mustDeriver(t, AlgorithmPBKDF2)

	km, err := d.Derive(context.Background(), []byte("pw"), nil, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(km.EncryptionKey) != KeySize || len(km.AuthenticationKey) != KeySize {
		t.Fatalf("unexpected subkey sizes %d/%d", len(km.EncryptionKey), len(km.AuthenticationKey))
	}
	if bytes.Equal(km.EncryptionKey, km.AuthenticationKey) {
		t.Fatal("subkeys must differ")
	}
	if len(km.Salt) != SaltSize {
		t.Fatalf("expected generated salt of %d bytes, got %d", SaltSize, len(km.Salt))
	}
	if km.Iterations != MinPBKDF2Iterations || km.Algorithm != AlgorithmPBKDF2 {
		t.Fatalf("parameters not recorded: %+v", km)
	}
}

func TestDerive_FreshSaltEachCall(t *testing.T) {
	d := mustDeriver(t, AlgorithmPBKDF2)

	k1, err := d.Derive(context.Background(), []byte("pw"), nil, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := d.Derive(context.Background(), []byte("pw"), nil, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if bytes.Equal(k1.Salt, k2.Salt) {
		t.Fatal("generated salts must differ")
	}
	if bytes.Equal(k1.EncryptionKey, k2.EncryptionKey) {
		t.Fatal("different salts must give different keys")
	}
}

func TestDerive_WeakParameters(t *testing.T) {
	tests := []struct {
		name       string
		algorithm  Algorithm
		secret     []byte
		salt       []byte
		iterations int
	}{
		{name: "pbkdf2 below minimum", algorithm: AlgorithmPBKDF2, secret: []byte("pw"), iterations: MinPBKDF2Iterations - 1},
		{name: "argon2 zero time", algorithm: AlgorithmArgon2id, secret: []byte("pw"), iterations: 0},
		{name: "empty secret", algorithm: AlgorithmPBKDF2, secret: nil, iterations: MinPBKDF2Iterations},
		{name: "short salt", algorithm: AlgorithmPBKDF2, secret: []byte("pw"), salt: []byte{1, 2, 3}, iterations: MinPBKDF2Iterations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDeriver(t, tt.algorithm)
			_, err := d.Derive(context.Background(), tt.secret, tt.salt, tt.iterations)
			if !errors.Is(err, ErrWeakParameters) {
				t.Fatalf("want ErrWeakParameters, got %v", err)
			}
		})
	}
}

func TestDerive_Argon2id(t *testing.T) {
	d := mustDeriver(t, AlgorithmArgon2id)
	salt := bytes.Repeat([]byte{7}, SaltSize)

	k1, err := d.Derive(context.Background(), []byte("pw"), salt, MinArgon2Time)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := d.Derive(context.Background(), []byte("pw"), salt, MinArgon2Time)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !bytes.Equal(k1.EncryptionKey, k2.EncryptionKey) {
		t.Fatal("argon2id must be deterministic")
	}

	p := mustDeriver(t, AlgorithmPBKDF2)
	k3, err := p.Derive(context.Background(), []byte("pw"), salt, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if bytes.Equal(k1.EncryptionKey, k3.EncryptionKey) {
		t.Fatal("algorithms must not collide")
	}
}

func TestDerive_CancelledContext(t *testing.T) {
	d := mustDeriver(t, AlgorithmPBKDF2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Derive(ctx, []byte("pw"), nil, MinPBKDF2Iterations)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestDerive_DoesNotAliasCallerSalt(t *testing.T) {
	d := mustDeriver(t, AlgorithmPBKDF2)
	salt := bytes.Repeat([]byte{1}, SaltSize)

	km, err := d.Derive(context.Background(), []byte("pw"), salt, MinPBKDF2Iterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	salt[0] = 0xff
	if km.Salt[0] != 1 {
		t.Fatal("key material must own its salt")
	}
}

func TestNewDeriver_UnknownAlgorithm(t *testing.T) {
	if _, err := NewDeriver("scrypt"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("want ErrUnknownAlgorithm, got %v", err)
	}
	d := mustDeriver(t, "")
	if d.Algorithm() != AlgorithmPBKDF2 {
		t.Fatalf("empty algorithm should select pbkdf2, got %s", d.Algorithm())
	}
}

func TestKeyMaterial_Wipe(t *testing.T) {
	km := &KeyMaterial{
		EncryptionKey:     bytes.Repeat([]byte{9}, KeySize),
		AuthenticationKey: bytes.Repeat([]byte{8}, KeySize),
	}
	km.Wipe()

	zero := make([]byte, KeySize)
	if !bytes.Equal(km.EncryptionKey, zero) || !bytes.Equal(km.AuthenticationKey, zero) {
		t.Fatal("Wipe must zero both subkeys")
	}

	var nilKM *KeyMaterial
	nilKM.Wipe()
}
