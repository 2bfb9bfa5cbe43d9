package cavity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-qpm/nlo/core"
)

// Airy returns the intensity transmission of a cavity of length L with
// mirror reflectivities r1, r2 at each wavelength, given the effective
// index seen at that wavelength:
//
//	φ = 2π·L·n/λ
//	T = 1 / (1 + 4·sqrt(r1·r2)·sin²φ / (1 − sqrt(r1·r2))²)
//
// Lengths and wavelengths share one unit (meters throughout this module).
func Airy(r1, r2, length float64, nEff, wavelengths []float64) ([]float64, error) {
	if len(nEff) != len(wavelengths) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(nEff), len(wavelengths))
	}
	if err := validateReflectivity("r1", r1); err != nil {
		return nil, err
	}
	if err := validateReflectivity("r2", r2); err != nil {
		return nil, err
	}
	if err := validateNonNegative("length", length); err != nil {
		return nil, err
	}

	r := math.Sqrt(r1 * r2)
	if r == 1 {
		return nil, fmt.Errorf("%w: lossless unity mirrors have no finite Airy coefficient", ErrDomain)
	}
	coeff := 4 * r / ((1 - r) * (1 - r))

	sin2 := make([]float64, len(nEff))
	for i, n := range nEff {
		wl := wavelengths[i]
		if !(wl > 0) || !core.IsFinite(n) {
			return nil, fmt.Errorf("%w: sample %d has n=%v, wavelength=%v", ErrDomain, i, n, wl)
		}
		s := math.Sin(2 * math.Pi * length * n / wl)
		sin2[i] = s * s
	}

	out := make([]float64, len(sin2))
	vecmath.ScaleBlock(out, sin2, coeff)
	for i, v := range out {
		out[i] = 1 / (1 + v)
	}
	return out, nil
}

// losslessTolerance is the distance from ρ = 1 treated as a lossless cavity.
const losslessTolerance = 1e-12

// Finesse returns the finesse of a cavity with mirror reflectivities r1,
// r2 and an internal loss of alpha dB per unit length over length L:
//
//	ρ = r1·r2·10^(−2αL/10)
//	F = π / (2·asin((1 − sqrt(ρ)) / (2·ρ^¼)))
//
// F grows without bound as ρ → 1 and is +Inf once ρ is within 1e-12 of 1,
// where the asin argument is lost to rounding. Round-trip factors
// below (√2−1)⁴ ≈ 0.029 leave the asin domain and return ErrDomain.
func Finesse(r1, r2, alpha, length float64) (float64, error) {
	if err := validateReflectivity("r1", r1); err != nil {
		return 0, err
	}
	if err := validateReflectivity("r2", r2); err != nil {
		return 0, err
	}
	if err := validateNonNegative("alpha", alpha); err != nil {
		return 0, err
	}
	if err := validateNonNegative("length", length); err != nil {
		return 0, err
	}

	rho := r1 * r2 * core.DBPowerToLinear(-2*alpha*length)
	if core.NearlyEqual(rho, 1, losslessTolerance) {
		return math.Inf(1), nil
	}
	if rho <= 0 {
		return 0, fmt.Errorf("%w: round-trip factor is zero", ErrDomain)
	}

	arg := (1 - math.Sqrt(rho)) / (2 * math.Pow(rho, 0.25))
	if arg > 1 {
		return 0, fmt.Errorf("%w: asin argument %v for round-trip factor %v", ErrDomain, arg, rho)
	}
	return math.Pi / (2 * math.Asin(arg)), nil
}

// FreeSpectralRange returns c/(2·nEff·L) in Hz for a cavity of length L
// meters.
func FreeSpectralRange(nEff, length float64) (float64, error) {
	if !(nEff > 0) || !(length > 0) || math.IsInf(nEff*length, 0) {
		return 0, fmt.Errorf("%w: need nEff > 0 and length > 0, got %v, %v", ErrDomain, nEff, length)
	}
	return core.SpeedOfLight / (2 * nEff * length), nil
}
