package phasematch

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports paired wavelength arrays of different lengths.
	ErrLengthMismatch = errors.New("phasematch: wavelength arrays must have the same length")
	// ErrInvalidWavelength reports a non-positive or non-finite wavelength.
	ErrInvalidWavelength = errors.New("phasematch: wavelength must be finite and > 0")
	// ErrInvalidPeriod reports a zero, negative or NaN poling period.
	ErrInvalidPeriod = errors.New("phasematch: poling period must be > 0")
	// ErrNonPhysicalIndex reports a dispersion model returning NaN or n <= 0,
	// typically a wavelength outside the fit range or at a Sellmeier pole.
	ErrNonPhysicalIndex = errors.New("phasematch: non-physical refractive index")
	// ErrNoPhaseMatch reports a mismatch that no positive period can null.
	ErrNoPhaseMatch = errors.New("phasematch: no positive poling period nulls the mismatch")
	// ErrEmptyProfile reports an empty poling profile.
	ErrEmptyProfile = errors.New("phasematch: poling profile must not be empty")
)

func validateWavelength(wl float64) error {
	if !(wl > 0) || wl > 1 {
		// > 1 m is certainly a unit error; also catches +Inf
		return fmt.Errorf("%w: %v", ErrInvalidWavelength, wl)
	}
	return nil
}

func validatePeriod(period float64) error {
	if !(period > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, period)
	}
	return nil
}
