package carrier

import "fmt"

// Embed writes bits into the low bpu bits of consecutive units of a clone of
// c and returns the clone. A trailing partial group is padded with zero bits.
// Text carriers lose any marks they had before.
func Embed(c Carrier, bits Bits, bpu int) (Carrier, error) {
	bpu, err := ValidateBitsPerUnit(c, bpu)
	if err != nil {
		return nil, err
	}
	if available := c.Units() * bpu; bits.Len() > available {
		return nil, &CapacityError{Required: bits.Len(), Available: available}
	}

	out := c.Clone()
	if t, ok := out.(*Text); ok {
		t.strip()
	}

	mask := uint32(1)<<uint(bpu) - 1
	for u, i := 0, 0; i < bits.Len(); u++ {
		var v uint32
		for k := 0; k < bpu; k++ {
			v <<= 1
			if i < bits.Len() {
				v |= bits.At(i)
			}
			i++
		}
		cur, _ := out.unit(u)
		out.setUnit(u, cur&^mask|v)
	}

	return out, nil
}

// Extract reads count bits from the low bpu bits of consecutive units of c.
// Reading past the carrier or over a unit that carries nothing returns
// [ErrMissingData].
func Extract(c Carrier, count, bpu int) (Bits, error) {
	bpu, err := ValidateBitsPerUnit(c, bpu)
	if err != nil {
		return Bits{}, err
	}
	if count < 0 || count > c.Units()*bpu {
		return Bits{}, fmt.Errorf("%w: %d bits requested, carrier holds %d", ErrMissingData, count, c.Units()*bpu)
	}

	out := newBits(count)
	for u, i := 0, 0; i < count; u++ {
		v, ok := c.unit(u)
		if !ok {
			return Bits{}, fmt.Errorf("%w: unit %d", ErrMissingData, u)
		}
		for k := bpu - 1; k >= 0 && i < count; k-- {
			out.set(i, v>>uint(k))
			i++
		}
	}

	return out, nil
}
