package phasematch

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response is the phase-matching response of a sampled grating profile.
type Response struct {
	// DeltaK holds the mismatch axis in rad/m, from 0 to π/dz.
	DeltaK []float64
	// Efficiency is |∫g(z)e^{-iΔkz}dz|² normalized to a uniform grating of
	// the same length, so a uniform profile reproduces sinc²(Δk·L/2).
	Efficiency []float64
}

// ProfileResponse computes the response of the nonlinear envelope profile
// sampled every dz meters; the grating length is len(profile)·dz. The
// profile is zero-padded to fftSize, rounded up to a power of two and at
// least the profile length; fftSize <= 0 selects eight-fold padding.
func ProfileResponse(profile []float64, dz float64, fftSize int) (Response, error) {
	n := len(profile)
	if n == 0 {
		return Response{}, ErrEmptyProfile
	}
	if !(dz > 0) {
		return Response{}, fmt.Errorf("phasematch: sample spacing must be > 0: %v", dz)
	}

	if fftSize <= 0 {
		fftSize = 8 * n
	}
	fftSize = nextPowerOf2(max(fftSize, n))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("phasematch: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range profile {
		in[i] = complex(v, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return Response{}, fmt.Errorf("phasematch: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	eff := make([]float64, bins)
	norm := float64(n)
	vecmath.ScaleBlock(eff, power, 1/(norm*norm))

	dk := make([]float64, bins)
	step := 2 * math.Pi / (float64(fftSize) * dz)
	for i := range dk {
		dk[i] = step * float64(i)
	}

	return Response{DeltaK: dk, Efficiency: eff}, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
