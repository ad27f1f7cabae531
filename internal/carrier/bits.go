package carrier

// Bits is an immutable bit sequence, MSB-first within each byte.
type Bits struct {
	data []byte
	n    int
}

// BitsFromBytes returns the 8*len(b) bits of b, most significant bit first.
func BitsFromBytes(b []byte) Bits {
	return Bits{data: append([]byte(nil), b...), n: 8 * len(b)}
}

func newBits(n int) Bits {
	return Bits{data: make([]byte, (n+7)/8), n: n}
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return b.n
}

// At returns bit i as 0 or 1.
func (b Bits) At(i int) uint32 {
	return uint32(b.data[i/8]>>(7-uint(i%8))) & 1
}

func (b Bits) set(i int, v uint32) {
	if v&1 == 1 {
		b.data[i/8] |= 1 << (7 - uint(i%8))
	}
}

// Bytes packs the sequence back into bytes; a trailing partial byte is
// padded with zero bits.
func (b Bits) Bytes() []byte {
	return append([]byte(nil), b.data...)
}
