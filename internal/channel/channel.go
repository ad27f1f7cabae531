// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package channel composes key derivation, the payload cipher, the
// capacity planner and the LSB codec into the hide and reveal operations.
//
// Hide: derive (fresh salt) -> seal -> plan -> embed.
// Reveal: extract header -> parse -> derive (embedded salt) -> extract frame -> open.
//
// A [Channel] holds configuration only. Every call owns its key material
// and wipes it before returning; the input carrier is never modified.
package channel

import (
	"context"
	"crypto/hmac"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
	"github.com/MKhiriev/go-stego-channel/internal/crypto"
)

// Result is the outcome of Hide or Reveal. On failure Success is false and
// only Timestamp is set.
type Result struct {
	Success     bool
	Artifact    carrier.Carrier
	Message     []byte
	Fingerprint string
	Plan        carrier.EmbedPlan
	Timestamp   time.Time
}

// MatchesFingerprint reports in constant time whether fp equals the
// result's fingerprint.
func (r Result) MatchesFingerprint(fp string) bool {
	return r.Fingerprint != "" && hmac.Equal([]byte(r.Fingerprint), []byte(fp))
}

// Channel runs hide and reveal with a fixed KDF configuration.
type Channel struct {
	deriver    crypto.Deriver
	iterations int
	now        func() time.Time
}

// Option configures a [Channel].
type Option func(*Channel)

// WithDeriver selects the key derivation function.
func WithDeriver(d crypto.Deriver) Option {
	return func(c *Channel) {
		c.deriver = d
	}
}

// WithIterations sets the KDF cost: PBKDF2 rounds or Argon2id passes.
func WithIterations(n int) Option {
	return func(c *Channel) {
		c.iterations = n
	}
}

// WithClock overrides the source of Result.Timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Channel) {
		c.now = now
	}
}

// New returns a Channel. Without options it uses PBKDF2-HMAC-SHA256 with
// the default iteration count.
func New(opts ...Option) (*Channel, error) {
	c := &Channel{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	if c.deriver == nil {
		d, err := crypto.NewDeriver(crypto.AlgorithmPBKDF2)
		if err != nil {
			return nil, err
		}
		c.deriver = d
	}
	if c.iterations == 0 {
		c.iterations = crypto.DefaultIterations(c.deriver.Algorithm())
	}
	if floor := crypto.MinIterations(c.deriver.Algorithm()); c.iterations < floor {
		return nil, fmt.Errorf("%w: %d iterations for %s, minimum %d",
			crypto.ErrWeakParameters, c.iterations, c.deriver.Algorithm(), floor)
	}

	return c, nil
}

// Algorithm returns the configured KDF.
func (ch *Channel) Algorithm() crypto.Algorithm {
	return ch.deriver.Algorithm()
}

// Iterations returns the configured KDF cost.
func (ch *Channel) Iterations() int {
	return ch.iterations
}

// Hide encrypts message under secret and embeds the frame into a copy of c.
func (ch *Channel) Hide(ctx context.Context, c carrier.Carrier, message, secret []byte, bitsPerUnit int) (Result, error) {
	res := Result{Timestamp: ch.timestamp()}

	bpu, err := carrier.ValidateBitsPerUnit(c, bitsPerUnit)
	if err != nil {
		return res, err
	}

	key, err := ch.deriver.Derive(ctx, secret, nil, ch.iterations)
	if err != nil {
		return res, fmt.Errorf("derive key: %w", err)
	}
	defer key.Wipe()

	frame, err := crypto.Seal(key, message, crypto.AssociatedData(c.Kind().Tag()))
	if err != nil {
		return res, fmt.Errorf("seal payload: %w", err)
	}
	raw, err := frame.MarshalBinary()
	if err != nil {
		return res, fmt.Errorf("encode frame: %w", err)
	}

	plan, err := carrier.Plan(c, raw, bpu)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	artifact, err := carrier.Embed(c, carrier.BitsFromBytes(raw), bpu)
	if err != nil {
		return res, fmt.Errorf("embed frame: %w", err)
	}

	res.Success = true
	res.Artifact = artifact
	res.Fingerprint = key.Fingerprint()
	res.Plan = plan
	return res, nil
}

// Reveal extracts and decrypts the message hidden in c.
func (ch *Channel) Reveal(ctx context.Context, c carrier.Carrier, secret []byte, bitsPerUnit int) (Result, error) {
	res := Result{Timestamp: ch.timestamp()}

	bpu, err := carrier.ValidateBitsPerUnit(c, bitsPerUnit)
	if err != nil {
		return res, err
	}

	head, err := extract(c, crypto.HeaderSize, bpu)
	if err != nil {
		return res, err
	}
	header, err := crypto.ParseHeader(head)
	if err != nil {
		return res, err
	}

	capacity := c.Units() * bpu
	if 8*header.FrameLen() > capacity {
		return res, fmt.Errorf("%w: header announces %d bits, carrier holds %d",
			crypto.ErrMalformedFrame, 8*header.FrameLen(), capacity)
	}

	key, err := ch.deriver.Derive(ctx, secret, header.Salt[:], ch.iterations)
	if err != nil {
		return res, fmt.Errorf("derive key: %w", err)
	}
	defer key.Wipe()

	raw, err := extract(c, header.FrameLen(), bpu)
	if err != nil {
		return res, err
	}
	frame, err := crypto.ParseFrame(raw)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	message, err := crypto.Open(key, frame, crypto.AssociatedData(c.Kind().Tag()))
	if err != nil {
		return res, err
	}

	res.Success = true
	res.Message = message
	res.Fingerprint = key.Fingerprint()
	return res, nil
}

// extract reads n bytes; any codec failure means there is no valid frame.
func extract(c carrier.Carrier, n, bpu int) ([]byte, error) {
	bits, err := carrier.Extract(c, 8*n, bpu)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrMalformedFrame, err)
	}
	return bits.Bytes(), nil
}

func (ch *Channel) timestamp() time.Time {
	return ch.now().UTC()
}
