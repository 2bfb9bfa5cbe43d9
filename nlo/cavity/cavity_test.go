package cavity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-qpm/internal/testutil"
)

func TestAiryResonanceAndAntiResonance(t *testing.T) {
	const length = 1e-3
	n := []float64{1, 1}
	// φ = π (resonant) and φ = π/2 (anti-resonant)
	wl := []float64{2 * length, 4 * length}

	got, err := Airy(0.9, 0.9, length, n, wl)
	require.NoError(t, err)
	require.InDelta(t, 1, got[0], 1e-12)

	r := 0.9
	want := 1 / (1 + 4*r/((1-r)*(1-r)))
	require.InDelta(t, want, got[1], 1e-12)
}

func TestAiryBounded(t *testing.T) {
	wl := testutil.RandomValues(4, 300, 1.5e-6, 1.6e-6)
	n := testutil.Const(2.14, len(wl))

	got, err := Airy(0.95, 0.8, 0.01, n, wl)
	require.NoError(t, err)
	testutil.RequireFinite(t, got)
	for i, v := range got {
		require.Greater(t, v, 0.0, "sample %d", i)
		require.LessOrEqual(t, v, 1.0, "sample %d", i)
	}

	// no mirrors, no fringes
	flat, err := Airy(0, 0.8, 0.01, n, wl)
	require.NoError(t, err)
	for _, v := range flat {
		require.Equal(t, 1.0, v)
	}
}

func TestAiryValidation(t *testing.T) {
	_, err := Airy(0.9, 0.9, 1e-3, []float64{1, 2}, []float64{1e-6})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Airy(1.2, 0.9, 1e-3, nil, nil)
	require.ErrorIs(t, err, ErrDomain)

	_, err = Airy(1, 1, 1e-3, nil, nil)
	require.ErrorIs(t, err, ErrDomain)

	_, err = Airy(0.9, 0.9, 1e-3, []float64{math.NaN()}, []float64{1e-6})
	require.ErrorIs(t, err, ErrDomain)

	_, err = Airy(0.9, 0.9, 1e-3, []float64{2}, []float64{0})
	require.ErrorIs(t, err, ErrDomain)
}

func TestFinesseHighReflector(t *testing.T) {
	f, err := Finesse(0.99, 0.99, 0, 1)
	require.NoError(t, err)
	// textbook π·sqrt(R)/(1−R) for R = 0.99
	require.InEpsilon(t, math.Pi*math.Sqrt(0.99)/0.01, f, 1e-4)

	// loss lowers the finesse
	lossy, err := Finesse(0.99, 0.99, 0.01, 1)
	require.NoError(t, err)
	require.Less(t, lossy, f)
}

func TestFinesseApproachesInfinity(t *testing.T) {
	prev := 0.0
	for k := 1; k <= 8; k++ {
		r := 1 - math.Pow(10, -float64(k))
		f, err := Finesse(r, r, 0, 0)
		require.NoError(t, err)
		require.Greater(t, f, prev, "R=%v", r)
		prev = f
	}
	require.Greater(t, prev, 1e7)

	inf, err := Finesse(1, 1, 0, 0.5)
	require.NoError(t, err)
	require.True(t, math.IsInf(inf, 1))
}

func TestFinesseRoundingNearUnityIsLossless(t *testing.T) {
	// ρ one ulp-scale step below 1 would give a huge finite finesse from
	// a rounding-dominated asin argument
	for _, r2 := range []float64{1 - 1e-14, math.Nextafter(1, 0)} {
		f, err := Finesse(1, r2, 0, 0)
		require.NoError(t, err)
		require.True(t, math.IsInf(f, 1), "r2=%v gave %v", r2, f)
	}

	// just outside the tolerance the finesse stays finite
	f, err := Finesse(1, 1-1e-10, 0, 0)
	require.NoError(t, err)
	require.False(t, math.IsInf(f, 0))
	require.Greater(t, f, 1e10)
}

func TestFinesseRealOverPhysicalRange(t *testing.T) {
	rs := testutil.RandomValues(9, 200, 0.2, 1)
	alphas := testutil.RandomValues(10, 200, 0, 0.05)
	for i := range rs {
		f, err := Finesse(rs[i], rs[len(rs)-1-i], alphas[i], 1)
		require.NoError(t, err)
		require.False(t, math.IsNaN(f))
		require.Greater(t, f, 0.0)
	}
}

func TestFinesseDomainErrors(t *testing.T) {
	for _, tc := range []struct {
		name                string
		r1, r2, alpha, size float64
	}{
		{name: "asin domain", r1: 0.1, r2: 0.1},
		{name: "zero reflectivity", r1: 0, r2: 0.9},
		{name: "reflectivity above one", r1: 1.01, r2: 0.9},
		{name: "negative loss", r1: 0.9, r2: 0.9, alpha: -1, size: 1},
		{name: "negative length", r1: 0.9, r2: 0.9, size: -1},
		{name: "nan", r1: math.NaN(), r2: 0.9},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Finesse(tc.r1, tc.r2, tc.alpha, tc.size)
			require.ErrorIs(t, err, ErrDomain)
			require.Equal(t, 0.0, f)
		})
	}
}

func TestFreeSpectralRange(t *testing.T) {
	fsr, err := FreeSpectralRange(1, 0.15)
	require.NoError(t, err)
	require.InEpsilon(t, 999308193.3, fsr, 1e-9)

	_, err = FreeSpectralRange(0, 1)
	require.ErrorIs(t, err, ErrDomain)
}
