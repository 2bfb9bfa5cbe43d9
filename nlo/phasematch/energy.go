package phasematch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-qpm/nlo/dispersion"
)

// PumpWavelength returns the wavelength whose photon energy is the sum of
// the photon energies at wl1 and wl2: 1/(1/wl1 + 1/wl2). The result does
// not depend on the medium.
func PumpWavelength(wl1, wl2 float64) float64 {
	return 1 / (1/wl1 + 1/wl2)
}

// PumpWavelengths applies [PumpWavelength] pairwise.
func PumpWavelengths(wl1, wl2 []float64) ([]float64, error) {
	if len(wl1) != len(wl2) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wl1), len(wl2))
	}

	out := make([]float64, len(wl1))
	for i := range wl1 {
		out[i] = PumpWavelength(wl1[i], wl2[i])
	}
	return out, nil
}

// LegacyEnergyConservation reproduces the historical batch routine that
// derived a difference-frequency companion for each pair:
//
//	vacuum[i] = |1/(1/wl1 − 1/wl2)|
//	medium[i] = |1/(n(wl1)/wl1 − n(wl2)/wl2)|
//
// with n evaluated at temperature. Superseded by [PumpWavelength]; kept for
// callers that still consume the medium-corrected value.
func LegacyEnergyConservation(wl1, wl2 []float64, index dispersion.IndexFunc, temperature float64) (vacuum, medium []float64, err error) {
	if len(wl1) != len(wl2) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wl1), len(wl2))
	}

	vacuum = make([]float64, len(wl1))
	medium = make([]float64, len(wl1))
	for i := range wl1 {
		n1, err := evalIndex(index, wl1[i], temperature)
		if err != nil {
			return nil, nil, err
		}
		n2, err := evalIndex(index, wl2[i], temperature)
		if err != nil {
			return nil, nil, err
		}
		vacuum[i] = math.Abs(1 / (1/wl1[i] - 1/wl2[i]))
		medium[i] = math.Abs(1 / (n1/wl1[i] - n2/wl2[i]))
	}
	return vacuum, medium, nil
}

func evalIndex(index dispersion.IndexFunc, wl, temperature float64) (float64, error) {
	if err := validateWavelength(wl); err != nil {
		return 0, err
	}
	n := index(wl, temperature)
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, fmt.Errorf("%w: n(%g m, %g C) = %v", ErrNonPhysicalIndex, wl, temperature, n)
	}
	return n, nil
}
