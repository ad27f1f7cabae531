// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package carrier models the media a payload is hidden in and implements the
// bit-capacity planner and the LSB codec over them.
//
// A carrier is a sequence of embedding units visited in natural order:
//   - [Text]: one unit per visible code point; the bit rides on a zero-width
//     mark placed right after it, so the rendered text never changes;
//   - [Image]: one unit per channel byte, row-major (R, G, B, A of pixel 0,
//     then pixel 1, ...);
//   - [Audio]: one unit per 16-bit PCM sample, interleaved channel order.
//
// [Plan] checks capacity before anything is touched; [Embed] never mutates
// its input and returns a clone; [Extract] reads an exact number of bits.
// The traversal order is public and not keyed: confidentiality comes from the
// cipher layer only.
package carrier

import (
	"fmt"
	"strings"
)

// Kind identifies a carrier variant. Its byte value is bound into the
// frame's associated data.
type Kind byte

const (
	KindText  Kind = 1
	KindImage Kind = 2
	KindAudio Kind = 3
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

// Tag returns the byte bound into associated data.
func (k Kind) Tag() byte {
	return byte(k)
}

// ParseKind converts a kind name into a [Kind].
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return KindText, nil
	case "image":
		return KindImage, nil
	case "audio":
		return KindAudio, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Carrier is implemented by [Text], [Image] and [Audio].
type Carrier interface {
	// Kind reports the carrier variant.
	Kind() Kind
	// Units returns the number of embedding units.
	Units() int
	// Clone returns a deep copy.
	Clone() Carrier

	// unit returns the value of unit i and whether it carries data at all.
	unit(i int) (uint32, bool)
	// setUnit overwrites unit i.
	setUnit(i int, v uint32)
	// maxBitsPerUnit bounds the density accepted for this carrier.
	maxBitsPerUnit() int
}
