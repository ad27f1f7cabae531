// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HideRequest asks to embed Message into Carrier.
//
// The secret is taken, in order, from Secret (set in-process only), from
// Password, or from a completed key exchange session named by the request's
// bearer token.
type HideRequest struct {
	// Kind is "text", "image" or "audio".
	Kind string `json:"kind"`

	// Carrier is the encoded cover file: PNG, BMP, 16-bit PCM WAV or UTF-8 text.
	Carrier []byte `json:"carrier"`

	Message  string `json:"message"`
	Password string `json:"password,omitempty"`

	// BitsPerUnit is the embedding density; zero selects the default.
	BitsPerUnit int `json:"bits_per_unit,omitempty"`

	// Secret is a raw shared secret, e.g. loaded from a key file.
	Secret []byte `json:"-"`
}

// HideResponse carries the encoded artifact.
type HideResponse struct {
	Artifact    []byte    `json:"artifact"`
	Format      string    `json:"format"`
	Fingerprint string    `json:"fingerprint"`
	Plan        Plan      `json:"plan"`
	Timestamp   time.Time `json:"timestamp"`
}

// RevealRequest asks to recover a message from Carrier. Secret resolution
// follows [HideRequest].
type RevealRequest struct {
	Kind        string `json:"kind"`
	Carrier     []byte `json:"carrier"`
	Password    string `json:"password,omitempty"`
	BitsPerUnit int    `json:"bits_per_unit,omitempty"`

	// ExpectedFingerprint, when set, is compared in constant time with the
	// fingerprint of the revealed artifact.
	ExpectedFingerprint string `json:"expected_fingerprint,omitempty"`

	Secret []byte `json:"-"`
}

// RevealResponse carries the recovered message.
type RevealResponse struct {
	Message     string    `json:"message"`
	Fingerprint string    `json:"fingerprint"`
	Timestamp   time.Time `json:"timestamp"`

	// FingerprintMatch is set only when the request carried an expected
	// fingerprint.
	FingerprintMatch *bool `json:"fingerprint_match,omitempty"`
}

// CapacityRequest asks whether a message of MessageLength bytes fits.
type CapacityRequest struct {
	Kind          string `json:"kind"`
	Carrier       []byte `json:"carrier"`
	MessageLength int    `json:"message_length"`
	BitsPerUnit   int    `json:"bits_per_unit,omitempty"`
}

// CapacityResponse reports the carrier budget.
type CapacityResponse struct {
	Plan Plan `json:"plan"`

	// MaxMessageLength is the largest plaintext in bytes the carrier holds.
	MaxMessageLength int  `json:"max_message_length"`
	Fits             bool `json:"fits"`
}

// Plan mirrors an embed plan on the wire.
type Plan struct {
	Kind          string `json:"kind"`
	BitsPerUnit   int    `json:"bits_per_unit"`
	RequiredBits  int    `json:"required_bits"`
	AvailableBits int    `json:"available_bits"`
	UnitsTouched  int    `json:"units_touched"`
}

// AnalyzeRequest asks for a detectability report of Carrier.
type AnalyzeRequest struct {
	Kind    string `json:"kind"`
	Carrier []byte `json:"carrier"`
}

// AnalyzeResponse is a steganalysis report.
type AnalyzeResponse struct {
	Kind                 string             `json:"kind"`
	DetectionProbability float64            `json:"detection_probability"`
	SecurityScore        int                `json:"security_score"`
	Level                string             `json:"level"`
	Details              map[string]float64 `json:"details"`
	Recommendations      []string           `json:"recommendations"`
}
