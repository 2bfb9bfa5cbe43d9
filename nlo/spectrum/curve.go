package spectrum

import (
	"github.com/cwbudde/algo-qpm/nlo/core"
	"github.com/cwbudde/algo-qpm/nlo/interp"
)

// Curve is a tabulated spectrum: Y[i] is the value at X[i]. X ascends for
// every consumer that interpolates.
type Curve struct {
	X []float64
	Y []float64
}

// NewCurve copies x and y into a validated Curve.
func NewCurve(x, y []float64) (Curve, error) {
	if err := validate(x, y); err != nil {
		return Curve{}, err
	}
	return Curve{X: core.Clone(x), Y: core.Clone(y)}, nil
}

// Validate checks the paired-length and non-empty invariants.
func (c Curve) Validate() error {
	return validate(c.X, c.Y)
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.X)
}

// ScaleX returns a copy with every x multiplied by factor.
func (c Curve) ScaleX(factor float64) Curve {
	x := make([]float64, len(c.X))
	for i, v := range c.X {
		x[i] = v * factor
	}
	return Curve{X: x, Y: core.Clone(c.Y)}
}

// ShiftX returns a copy with offset added to every x. Y is shared with c.
func (c Curve) ShiftX(offset float64) Curve {
	x := make([]float64, len(c.X))
	for i, v := range c.X {
		x[i] = v + offset
	}
	return Curve{X: x, Y: c.Y}
}

// At interpolates the curve at x.
func (c Curve) At(x float64) (float64, error) {
	return interp.Linear(x, c.X, c.Y)
}

// Resample interpolates the curve onto grid.
func (c Curve) Resample(grid []float64) ([]float64, error) {
	return interp.LinearSlice(grid, c.X, c.Y)
}
