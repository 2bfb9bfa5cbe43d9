package grid

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-qpm/nlo/core"
)

// ITU 50 GHz grid boundaries.
const (
	ITUStartHz   = 191.15e12
	ITUStopHz    = 196.15e12
	ITUSpacingHz = 50e9
)

// Linspace returns num evenly spaced values over [start, end], both
// endpoints included. A single sample yields [start].
func Linspace(start, end float64, num int) ([]float64, error) {
	if num <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, num)
	}
	if num == 1 {
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, num), start, end), nil
}

// Frequencies returns start, start+spacing, ... up to but excluding stop.
// The count is ceil((stop-start)/spacing).
func Frequencies(startHz, stopHz, spacingHz float64) ([]float64, error) {
	if err := validateRange(startHz, stopHz, spacingHz); err != nil {
		return nil, err
	}

	n := int(math.Ceil((stopHz - startHz) / spacingHz))
	if n == 1 {
		return []float64{startHz}, nil
	}
	return floats.Span(make([]float64, n), startHz, startHz+float64(n-1)*spacingHz), nil
}

// Wavelengths converts a frequency range into vacuum wavelengths in meters,
// reversed so the result ascends.
func Wavelengths(startHz, stopHz, spacingHz float64) ([]float64, error) {
	freqs, err := Frequencies(startHz, stopHz, spacingHz)
	if err != nil {
		return nil, err
	}

	wl := make([]float64, len(freqs))
	for i, f := range freqs {
		wl[i] = core.FrequencyToWavelength(f)
	}
	slices.Reverse(wl)
	return wl, nil
}

// ITU50GHz returns the 50 GHz ITU channel wavelengths in meters, ascending.
func ITU50GHz() []float64 {
	wl, err := Wavelengths(ITUStartHz, ITUStopHz, ITUSpacingHz)
	if err != nil {
		// constants are valid
		panic(err)
	}
	return wl
}
