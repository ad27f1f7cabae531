package carrier

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientCapacity is matched by every [*CapacityError].
	ErrInsufficientCapacity = errors.New("insufficient carrier capacity")

	// ErrUnsupportedCarrierEncoding is returned for lossy or unknown media
	// encodings the codec cannot embed into without damage.
	ErrUnsupportedCarrierEncoding = errors.New("unsupported carrier encoding")

	ErrInvalidBitsPerUnit = errors.New("invalid bits per unit")
	ErrUnknownKind        = errors.New("unknown carrier kind")
	ErrInvalidShape       = errors.New("invalid carrier shape")

	// ErrMissingData is returned by Extract when a unit inside the requested
	// range carries no embedded bits (e.g. text without a mark) or the range
	// runs past the carrier.
	ErrMissingData = errors.New("carrier holds no data at the requested position")
)

// CapacityError reports how many bits a payload needs against how many the
// carrier offers.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: required %d bits, available %d bits", ErrInsufficientCapacity, e.Required, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientCapacity) hold.
func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}
