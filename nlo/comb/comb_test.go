package comb

import (
	"math"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-qpm/internal/testutil"
	"github.com/cwbudde/algo-qpm/nlo/interp"
	"github.com/cwbudde/algo-qpm/nlo/spectrum"
)

// Axis in nanometers: 100 samples, 0.08 nm apart, so a 0.2 nm window
// reaches two samples on each side of the seed.
func testAxis() []float64 {
	return testutil.EvenGrid(1530, 0.08, 100)
}

// Ten-point filter, relative to its center, strictly positive so every
// written slot is distinguishable from an untouched zero.
func testFilter(t *testing.T) spectrum.Curve {
	t.Helper()
	x := testutil.EvenGrid(-0.45, 0.1, 10)
	y := testutil.GaussianPassband(x, 0, 0.2, 1)
	for i := range y {
		y[i] += 0.01
	}
	c, err := spectrum.NewCurve(x, y)
	require.NoError(t, err)
	return c
}

func tileValue(t *testing.T, filter spectrum.Curve, center, at float64) float64 {
	t.Helper()
	v, err := filter.ShiftX(center).At(at)
	require.NoError(t, err)
	return v
}

func TestBuildSingleTile(t *testing.T) {
	axis := testAxis()
	filter := testFilter(t)
	c, err := New(filter)
	require.NoError(t, err)

	center := axis[40] + 0.01
	out, err := c.Build(axis, []float64{center})
	require.NoError(t, err)
	require.Len(t, out, len(axis))

	for i, v := range out {
		if i >= 38 && i <= 42 {
			require.NotZero(t, v, "index %d inside window", i)
			continue
		}
		require.Zero(t, v, "index %d outside window", i)
	}

	require.Equal(t, tileValue(t, filter, center, axis[40]), out[40])
	for j := 1; j <= 2; j++ {
		want := tileValue(t, filter, center, axis[40+j])
		require.Equal(t, want, out[40+j], "right j=%d", j)
		require.Equal(t, want, out[40-j], "left j=%d takes the right-hand sample", j)
	}
}

// An asymmetric filter still yields a tile mirrored about its seed.
func TestBuildMirrorsRightHandSample(t *testing.T) {
	axis := testAxis()
	ramp, err := spectrum.NewCurve([]float64{-1, 1}, []float64{0, 2})
	require.NoError(t, err)
	c, err := New(ramp)
	require.NoError(t, err)

	out, err := c.Build(axis, []float64{axis[10]})
	require.NoError(t, err)

	require.InDelta(t, 1, out[10], 1e-12)
	require.InDelta(t, 1.08, out[11], 1e-9)
	require.InDelta(t, 1.16, out[12], 1e-9)
	require.Equal(t, out[11], out[9])
	require.Equal(t, out[12], out[8])
}

func TestBuildWindowEnumeratesExactly(t *testing.T) {
	axis := testAxis()
	c, err := New(testFilter(t))
	require.NoError(t, err)

	centers := []float64{axis[5], axis[20] - 0.02, axis[60] + 0.03, axis[90]}
	out, err := c.Build(axis, centers)
	require.NoError(t, err)

	want := map[int]bool{}
	for _, ctr := range centers {
		seed := interp.ClosestIndex(axis, ctr)
		for i := range axis {
			if math.Abs(axis[i]-axis[seed]) <= c.Window() {
				want[i] = true
			}
		}
	}
	for i, v := range out {
		require.Equal(t, want[i], v != 0, "index %d", i)
	}
}

func TestBuildLaterTileWins(t *testing.T) {
	axis := testAxis()
	filter := testFilter(t)
	c, err := New(filter)
	require.NoError(t, err)

	first := axis[50] + 0.01
	second := axis[52] + 0.01
	out, err := c.Build(axis, []float64{first, second})
	require.NoError(t, err)

	// first tile alone owns 48 and 49
	require.Equal(t, tileValue(t, filter, first, axis[52]), out[48])
	require.Equal(t, tileValue(t, filter, first, axis[51]), out[49])
	// the overlap 50..52 holds the second tile
	require.Equal(t, tileValue(t, filter, second, axis[52]), out[52])
	require.Equal(t, tileValue(t, filter, second, axis[54]), out[50])
	require.Equal(t, tileValue(t, filter, second, axis[53]), out[51])

	// reversing the order hands the overlap to the first center
	rev, err := c.Build(axis, []float64{second, first})
	require.NoError(t, err)
	require.Equal(t, tileValue(t, filter, first, axis[50]), rev[50])
	require.Equal(t, tileValue(t, filter, first, axis[52]), rev[52])
	require.NotEqual(t, out[52], rev[52])
}

func TestBuildStopsAtAxisEdge(t *testing.T) {
	axis := testAxis()
	c, err := New(testFilter(t))
	require.NoError(t, err)

	out, err := c.Build(axis, []float64{axis[1]})
	require.NoError(t, err)
	// j=2 would need index -1, so expansion ends after j=1 on both sides
	require.NotZero(t, out[0])
	require.NotZero(t, out[1])
	require.NotZero(t, out[2])
	require.Zero(t, out[3])

	out, err = c.Build(axis, []float64{axis[99] + 5})
	require.NoError(t, err)
	require.Zero(t, out[98])
	// seed clamps to the last sample; filter extrapolates its edge value
	require.NotZero(t, out[99])
}

func TestBuildNoCenters(t *testing.T) {
	axis := testAxis()
	c, err := New(testFilter(t))
	require.NoError(t, err)

	out, err := c.Build(axis, nil)
	require.NoError(t, err)
	require.Equal(t, make([]float64, len(axis)), out)

	empty, err := c.Build(nil, []float64{1530})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestBuildValidation(t *testing.T) {
	_, err := New(spectrum.Curve{X: []float64{1, 2}, Y: []float64{1}})
	require.ErrorIs(t, err, spectrum.ErrLengthMismatch)

	_, err = New(testFilter(t), WithAnchor(10))
	require.ErrorIs(t, err, ErrAnchor)

	c, err := New(testFilter(t))
	require.NoError(t, err)

	_, err = c.Build([]float64{3, 2, 1}, []float64{2})
	require.ErrorIs(t, err, ErrUnsorted)

	_, err = c.Build(testAxis(), []float64{math.NaN()})
	require.ErrorIs(t, err, ErrCenter)
}

func TestWithAnchorRecenters(t *testing.T) {
	// filter recorded on an absolute axis, peak at sample 2
	x := []float64{1549.8, 1549.9, 1550.0, 1550.1, 1550.2}
	y := []float64{0.1, 0.5, 1, 0.5, 0.1}
	filter, err := spectrum.NewCurve(x, y)
	require.NoError(t, err)

	c, err := New(filter, WithAnchor(2), WithWindow(0.1), WithLogger(l.NewNopLoggerWrapper()))
	require.NoError(t, err)
	require.Equal(t, 0.1, c.Window())

	axis := testAxis()
	out, err := c.Build(axis, []float64{axis[30]})
	require.NoError(t, err)
	require.InDelta(t, 1, out[30], 1e-9)
	require.InDelta(t, 0.6, out[31], 1e-9)
	require.Zero(t, out[32])

	// input filter untouched
	require.Equal(t, 1550.0, filter.X[2])
}

func TestWithWindowIgnoresInvalid(t *testing.T) {
	c, err := New(testFilter(t), WithWindow(-1), WithWindow(math.NaN()), nil)
	require.NoError(t, err)
	require.Equal(t, DefaultWindow, c.Window())
}

// Property sweep on random axes: output length matches, untouched slots
// stay zero, every written slot lies within the window of some seed, and
// written values come from the filter's range.
func TestBuildProperties(t *testing.T) {
	filter := testFilter(t)
	lo, hi := 0.01, 1.01

	for seed := uint64(1); seed <= 25; seed++ {
		axis := testutil.RandomAscending(seed, 50+int(seed)*7, 1540, 1560)
		centers := testutil.RandomValues(seed+50, int(seed%6), 1538, 1562)

		c, err := New(filter, WithWindow(0.05+0.02*float64(seed%5)))
		require.NoError(t, err)

		out, err := c.Build(axis, centers)
		require.NoError(t, err)
		require.Len(t, out, len(axis))

		seeds := make([]int, len(centers))
		for k, ctr := range centers {
			seeds[k] = interp.ClosestIndex(axis, ctr)
			require.NotZero(t, out[seeds[k]], "seed %d center %d", seed, k)
		}

		for i, v := range out {
			if v == 0 {
				continue
			}
			require.GreaterOrEqual(t, v, lo-1e-12)
			require.LessOrEqual(t, v, hi+1e-12)

			near := false
			for _, s := range seeds {
				if math.Abs(axis[i]-axis[s]) <= c.Window() {
					near = true
					break
				}
			}
			require.True(t, near, "seed %d: index %d written outside every window", seed, i)
		}
	}
}

func TestBuildUnevenAxisStopsOnFartherSide(t *testing.T) {
	flat, err := spectrum.NewCurve([]float64{-1, 1}, []float64{1, 1})
	require.NoError(t, err)
	c, err := New(flat, WithWindow(0.2))
	require.NoError(t, err)

	// seed 1.0; the second step reaches 1.1 on the right (0.1 away) but
	// 0.7 on the left (0.3 away), so the tile ends after the first step
	axis := []float64{0, 0.7, 0.95, 1.0, 1.05, 1.1}
	out, err := c.Build(axis, []float64{1.0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 1, 1, 0}, out)
}
