// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

const adLabel = "stego-channel"

// AssociatedData binds the carrier kind and the format version into the
// authentication tag, so a frame lifted into another carrier type or read
// under another layout fails to open.
func AssociatedData(kindTag byte) []byte {
	ad := make([]byte, 0, len(adLabel)+2)
	ad = append(ad, adLabel...)
	return append(ad, FormatVersion, kindTag)
}

// Seal encrypts plaintext under key.EncryptionKey with a nonce drawn from
// crypto/rand. There is no way to pass a nonce in.
func Seal(key *KeyMaterial, plaintext, ad []byte) (*Frame, error) {
	if key == nil || len(key.EncryptionKey) != KeySize || len(key.Salt) != SaltSize {
		return nil, fmt.Errorf("%w: incomplete key material", ErrWeakParameters)
	}
	if len(plaintext)+chacha20poly1305.Overhead > MaxCiphertextLen {
		return nil, fmt.Errorf("%w: plaintext of %d bytes exceeds limit", ErrMalformedFrame, len(plaintext))
	}

	aead, err := chacha20poly1305.New(key.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	f := &Frame{Version: FormatVersion}
	copy(f.Salt[:], key.Salt)
	if _, err := io.ReadFull(rand.Reader, f.Nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, f.Nonce[:], plaintext, ad)
	split := len(sealed) - TagSize
	f.Ciphertext = sealed[:split:split]
	copy(f.Tag[:], sealed[split:])

	return f, nil
}

// Open authenticates and decrypts f. No plaintext is returned unless the tag
// verifies.
func Open(key *KeyMaterial, f *Frame, ad []byte) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrMalformedFrame)
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormatVersion, f.Version)
	}
	if key == nil || len(key.EncryptionKey) != KeySize {
		return nil, fmt.Errorf("%w: incomplete key material", ErrWeakParameters)
	}
	if !bytes.Equal(key.Salt, f.Salt[:]) {
		return nil, fmt.Errorf("%w: key was derived with a different salt", ErrMalformedFrame)
	}

	aead, err := chacha20poly1305.New(key.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	sealed := make([]byte, 0, len(f.Ciphertext)+TagSize)
	sealed = append(sealed, f.Ciphertext...)
	sealed = append(sealed, f.Tag[:]...)

	plaintext, err := aead.Open(nil, f.Nonce[:], sealed, ad)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
