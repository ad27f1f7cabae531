// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/binary"
	"fmt"
)

const (
	// FormatVersion is the only frame layout this package reads and writes.
	FormatVersion byte = 1

	NonceSize = 12
	TagSize   = 16

	// HeaderSize is version + nonce + salt + ciphertext length.
	HeaderSize = 1 + NonceSize + SaltSize + 4
	// Overhead is the number of frame bytes added to a plaintext.
	Overhead = HeaderSize + TagSize

	// MaxCiphertextLen bounds the length field so a corrupted header cannot
	// request an absurd extraction.
	MaxCiphertextLen = 1 << 28
)

// Header is the fixed-size prefix of a [Frame]. Reveal reads it first to
// learn the salt and how many more bytes to extract.
type Header struct {
	Version          byte
	Nonce            [NonceSize]byte
	Salt             [SaltSize]byte
	CiphertextLength uint32
}

// FrameLen is the total frame length announced by the header.
func (h Header) FrameLen() int {
	return HeaderSize + int(h.CiphertextLength) + TagSize
}

// Frame is the binary unit embedded into a carrier.
type Frame struct {
	Version    byte
	Nonce      [NonceSize]byte
	Salt       [SaltSize]byte
	Ciphertext []byte
	Tag        [TagSize]byte
}

// Len returns the serialized length of f.
func (f *Frame) Len() int {
	return Overhead + len(f.Ciphertext)
}

// Header returns the header describing f.
func (f *Frame) Header() Header {
	return Header{
		Version:          f.Version,
		Nonce:            f.Nonce,
		Salt:             f.Salt,
		CiphertextLength: uint32(len(f.Ciphertext)),
	}
}

// MarshalBinary encodes f in wire order.
func (f *Frame) MarshalBinary() ([]byte, error) {
	if len(f.Ciphertext) > MaxCiphertextLen {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes exceeds limit", ErrMalformedFrame, len(f.Ciphertext))
	}

	buf := make([]byte, 0, f.Len())
	buf = append(buf, f.Version)
	buf = append(buf, f.Nonce[:]...)
	buf = append(buf, f.Salt[:]...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(f.Ciphertext)))
	buf = append(buf, f.Ciphertext...)
	buf = append(buf, f.Tag[:]...)

	return buf, nil
}

// ParseHeader decodes the first HeaderSize bytes of b.
func ParseHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < HeaderSize {
		return h, fmt.Errorf("%w: header needs %d bytes, got %d", ErrMalformedFrame, HeaderSize, len(b))
	}

	h.Version = b[0]
	if h.Version != FormatVersion {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedFormatVersion, h.Version)
	}

	off := 1
	off += copy(h.Nonce[:], b[off:])
	off += copy(h.Salt[:], b[off:])
	h.CiphertextLength = binary.BigEndian.Uint32(b[off:])

	if h.CiphertextLength > MaxCiphertextLen {
		return h, fmt.Errorf("%w: ciphertext length %d exceeds limit", ErrMalformedFrame, h.CiphertextLength)
	}

	return h, nil
}

// ParseFrame decodes a complete frame. Trailing bytes beyond the announced
// length are a malformed frame.
func ParseFrame(b []byte) (*Frame, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	if len(b) != h.FrameLen() {
		return nil, fmt.Errorf("%w: header announces %d bytes, got %d", ErrMalformedFrame, h.FrameLen(), len(b))
	}

	f := &Frame{
		Version:    h.Version,
		Nonce:      h.Nonce,
		Salt:       h.Salt,
		Ciphertext: append([]byte(nil), b[HeaderSize:HeaderSize+int(h.CiphertextLength)]...),
	}
	copy(f.Tag[:], b[HeaderSize+int(h.CiphertextLength):])

	return f, nil
}
