package interp

import (
	"math"
	"sort"
)

// Linear interpolates the curve (xp, yp) at x.
func Linear(x float64, xp, yp []float64) (float64, error) {
	if err := validate(xp, yp); err != nil {
		return 0, err
	}
	return linear(x, xp, yp), nil
}

// LinearSlice interpolates the curve (xp, yp) at every element of x and
// returns a new slice of the same length.
func LinearSlice(x, xp, yp []float64) ([]float64, error) {
	if err := validate(xp, yp); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = linear(v, xp, yp)
	}
	return out, nil
}

// linear assumes validated, ascending control points.
func linear(x float64, xp, yp []float64) float64 {
	last := len(xp) - 1
	if last == 0 {
		return yp[0]
	}
	if x < xp[0] {
		return yp[0]
	}
	if x > xp[last] {
		return yp[last]
	}

	// First segment i with xp[i] <= x <= xp[i+1]: the lowest i whose upper
	// knot reaches x. A query on an interior knot lands in the segment
	// ending at it.
	i := sort.Search(last, func(k int) bool { return xp[k+1] >= x })
	if i >= last {
		// only reachable for a NaN query
		return math.NaN()
	}

	x0, x1 := xp[i], xp[i+1]
	y0, y1 := yp[i], yp[i+1]
	if x1 == x0 {
		return y0
	}
	if x == x1 {
		return y1
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// ClosestIndex returns the index of the element of the ascending grid
// closest to v. Equidistant neighbours resolve to the later index. Values
// beyond either end map to that end. An empty grid yields -1.
func ClosestIndex(grid []float64, v float64) int {
	n := len(grid)
	if n == 0 {
		return -1
	}

	hi := sort.SearchFloat64s(grid, v)
	if hi == 0 {
		return 0
	}
	if hi == n {
		return n - 1
	}

	lo := hi - 1
	if v-grid[lo] < grid[hi]-v {
		return lo
	}
	return hi
}
