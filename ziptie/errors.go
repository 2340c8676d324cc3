package ziptie

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; call sites wrap them with the
// method name, e.g. "Ziptie.Learn: ziptie: activity vector shape mismatch".
var (
	// ErrShapeMismatch is returned when an activity or weight vector does not
	// have the length fixed at construction. No state is mutated.
	ErrShapeMismatch = errors.New("ziptie: activity vector shape mismatch")

	// ErrBundleOutOfRange is returned when a bundle index is negative or not
	// yet created. Capacity and created count are distinct.
	ErrBundleOutOfRange = errors.New("ziptie: bundle index out of range")

	// ErrCableOutOfRange is returned when a cable index is outside [0, Cables()).
	ErrCableOutOfRange = errors.New("ziptie: cable index out of range")

	// ErrInvalidCables is returned by New when the cable count is not positive.
	ErrInvalidCables = errors.New("ziptie: number of cables must be > 0")
)

// zipErrorf wraps err with a uniform "Ziptie.<method>" context.
func zipErrorf(method string, err error) error {
	return fmt.Errorf("Ziptie.%s: %w", method, err)
}
