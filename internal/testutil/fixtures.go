package testutil

import (
	"math"
	"math/rand/v2"
)

// EvenGrid returns n ascending values start, start+step, ...
func EvenGrid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Const returns a slice of length n filled with value.
func Const(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// GaussianPassband returns a filter-like transmission curve sampled on x:
// peak transmission at center, 1/e half-width of width.
func GaussianPassband(x []float64, center, width, peak float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / width
		out[i] = peak * math.Exp(-d*d)
	}
	return out
}

// RandomAscending returns n strictly ascending values in [lo, hi) drawn with
// a fixed seed, for reproducible property sweeps.
func RandomAscending(seed uint64, n int, lo, hi float64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	step := (hi - lo) / float64(n)
	for i := range out {
		// jitter inside each cell keeps strict ordering
		out[i] = lo + step*(float64(i)+0.05+0.9*rng.Float64())
	}
	return out
}

// RandomValues returns n values in [lo, hi) drawn with a fixed seed.
func RandomValues(seed uint64, n int, lo, hi float64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float64()
	}
	return out
}
