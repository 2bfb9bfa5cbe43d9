package phasematch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-qpm/nlo/dispersion"
)

// Mismatch returns n(λp)/λp − n(λ1)/λ1 − n(λ2)/λ2 in 1/m, the wave-vector
// mismatch divided by 2π before any grating contribution.
func Mismatch(wl1, wl2 float64, index dispersion.IndexFunc, temperature float64) (float64, error) {
	n1, err := evalIndex(index, wl1, temperature)
	if err != nil {
		return 0, err
	}
	n2, err := evalIndex(index, wl2, temperature)
	if err != nil {
		return 0, err
	}
	pump := PumpWavelength(wl1, wl2)
	np, err := evalIndex(index, pump, temperature)
	if err != nil {
		return 0, err
	}
	return np/pump - n1/wl1 - n2/wl2, nil
}

// DeltaK returns the phase mismatch in rad/m of the pair (wl1, wl2) and
// their derived pump in a grating of the given period. An infinite period
// describes an unpoled crystal.
func DeltaK(wl1, wl2 float64, index dispersion.IndexFunc, temperature, period float64) (float64, error) {
	if err := validatePeriod(period); err != nil {
		return 0, err
	}
	m, err := Mismatch(wl1, wl2, index, temperature)
	if err != nil {
		return 0, err
	}
	return 2 * math.Pi * (m - 1/period), nil
}

// PolingPeriod returns the grating period that nulls Δk for the pair.
func PolingPeriod(wl1, wl2 float64, index dispersion.IndexFunc, temperature float64) (float64, error) {
	m, err := Mismatch(wl1, wl2, index, temperature)
	if err != nil {
		return 0, err
	}
	if !(m > 0) {
		return 0, fmt.Errorf("%w: mismatch %v 1/m", ErrNoPhaseMatch, m)
	}
	return 1 / m, nil
}

// Sinc returns sin(x)/x with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// Efficiency returns the normalized phase-matching efficiency
// sinc²(Δk·L/2) of a uniform grating of the given length. Δk = 0 gives
// exactly 1.
func Efficiency(deltaK, length float64) float64 {
	s := Sinc(deltaK * length / 2)
	return s * s
}
