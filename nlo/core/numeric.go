package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute check first and a relative one for large magnitudes. A
// non-positive eps selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DBPowerToLinear converts a power ratio in dB to a linear factor
// (10·log10 convention). Cavity round-trip loss uses this form.
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}
