package carrier

import "fmt"

const (
	DefaultBitsPerUnit = 1
	MaxBitsPerUnit     = 2
)

// EmbedPlan describes an accepted embedding before any unit is written.
type EmbedPlan struct {
	Kind          Kind
	BitsPerUnit   int
	RequiredBits  int
	AvailableBits int
	UnitsTouched  int
}

// ValidateBitsPerUnit checks bpu against what c tolerates. Zero selects
// [DefaultBitsPerUnit].
func ValidateBitsPerUnit(c Carrier, bpu int) (int, error) {
	if bpu == 0 {
		bpu = DefaultBitsPerUnit
	}
	if bpu < 1 || bpu > c.maxBitsPerUnit() {
		return 0, fmt.Errorf("%w: %d for %s carrier (1..%d)", ErrInvalidBitsPerUnit, bpu, c.Kind(), c.maxBitsPerUnit())
	}
	return bpu, nil
}

// CapacityBits returns how many payload bits c can hold at bpu.
func CapacityBits(c Carrier, bpu int) (int, error) {
	bpu, err := ValidateBitsPerUnit(c, bpu)
	if err != nil {
		return 0, err
	}
	return c.Units() * bpu, nil
}

// Plan accepts frame for c or returns a [*CapacityError]. c is not touched.
func Plan(c Carrier, frame []byte, bpu int) (EmbedPlan, error) {
	bpu, err := ValidateBitsPerUnit(c, bpu)
	if err != nil {
		return EmbedPlan{}, err
	}

	required := 8 * len(frame)
	available := c.Units() * bpu
	if required > available {
		return EmbedPlan{}, &CapacityError{Required: required, Available: available}
	}

	return EmbedPlan{
		Kind:          c.Kind(),
		BitsPerUnit:   bpu,
		RequiredBits:  required,
		AvailableBits: available,
		UnitsTouched:  (required + bpu - 1) / bpu,
	}, nil
}
