package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports x and y of different lengths.
	ErrLengthMismatch = errors.New("spectrum: x and y must have the same length")
	// ErrEmpty reports a curve without samples.
	ErrEmpty = errors.New("spectrum: curve has no samples")
	// ErrColumn reports a missing or non-numeric CSV column.
	ErrColumn = errors.New("spectrum: bad column")
)

func validate(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return ErrEmpty
	}
	return nil
}
