package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange reports a non-positive span or spacing.
	ErrInvalidRange = errors.New("grid: invalid range")
	// ErrInvalidCount reports a non-positive sample count.
	ErrInvalidCount = errors.New("grid: sample count must be > 0")
)

func validateRange(startHz, stopHz, spacingHz float64) error {
	if !(spacingHz > 0) {
		return fmt.Errorf("%w: spacing must be > 0: %v", ErrInvalidRange, spacingHz)
	}
	if !(startHz > 0) || !(stopHz > startHz) {
		return fmt.Errorf("%w: need 0 < start < stop, got [%v, %v)", ErrInvalidRange, startHz, stopHz)
	}
	return nil
}
