package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports control arrays of different lengths.
	ErrLengthMismatch = errors.New("interp: xp and yp must have the same length")
	// ErrEmpty reports an empty control-point set.
	ErrEmpty = errors.New("interp: no control points")
)

func validate(xp, yp []float64) error {
	if len(xp) != len(yp) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xp), len(yp))
	}
	if len(xp) == 0 {
		return ErrEmpty
	}
	return nil
}
