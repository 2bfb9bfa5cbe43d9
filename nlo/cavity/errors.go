package cavity

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports index and wavelength arrays of different lengths.
	ErrLengthMismatch = errors.New("cavity: neff and wavelength arrays must have the same length")
	// ErrDomain reports inputs outside the physical range or outside the
	// domain of the closed-form expressions.
	ErrDomain = errors.New("cavity: argument out of domain")
)

func validateReflectivity(name string, r float64) error {
	if !(r >= 0 && r <= 1) {
		return fmt.Errorf("%w: %s must be in [0,1]: %v", ErrDomain, name, r)
	}
	return nil
}

func validateNonNegative(name string, v float64) error {
	if !(v >= 0) || v > 1e300 {
		return fmt.Errorf("%w: %s must be finite and >= 0: %v", ErrDomain, name, v)
	}
	return nil
}
