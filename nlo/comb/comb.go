package comb

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/sgostarter/i/l"

	"github.com/cwbudde/algo-qpm/nlo/core"
	"github.com/cwbudde/algo-qpm/nlo/interp"
	"github.com/cwbudde/algo-qpm/nlo/spectrum"
)

// Comb is an immutable tiling of one filter curve.
type Comb struct {
	filter spectrum.Curve
	window float64
	logger l.Wrapper
}

// New validates the filter and returns a Comb ready to build responses.
func New(filter spectrum.Curve, opts ...Option) (*Comb, error) {
	base, err := spectrum.NewCurve(filter.X, filter.Y)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.anchor != noAnchor {
		if cfg.anchor < 0 || cfg.anchor >= filter.Len() {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrAnchor, cfg.anchor, filter.Len())
		}
		base = base.ShiftX(-filter.X[cfg.anchor])
	}

	return &Comb{
		filter: base,
		window: cfg.window,
		logger: core.ApplyOptions(cfg.core...).Logger.WithFields(l.StringField(l.ClsKey, "comb")),
	}, nil
}

// Window returns the tile half-width in axis units.
func (c *Comb) Window() float64 {
	return c.window
}

// Build returns the composite response on the ascending wavelength axis,
// one tile per entry of centers, applied in order.
//
// A tile grows one step at a time on both sides of its seed sample and
// stops as soon as either the left or the right sample lies more than the
// window away from the seed. On an evenly spaced axis both sides reach
// the same distance; on an uneven axis the nearer-spaced side is cut
// short by the farther one, so a tile never extends further on one side
// than the other.
func (c *Comb) Build(wavelengths, centers []float64) ([]float64, error) {
	if !slices.IsSorted(wavelengths) {
		return nil, ErrUnsorted
	}

	out := make([]float64, len(wavelengths))
	if len(wavelengths) == 0 {
		return out, nil
	}

	for t, center := range centers {
		written, err := c.placeTile(out, wavelengths, center)
		if err != nil {
			return nil, fmt.Errorf("comb: tile %d: %w", t, err)
		}
		c.logger.WithFields(
			l.IntField("tile", t),
			l.StringField("center", strconv.FormatFloat(center, 'g', 12, 64)),
			l.IntField("samples", written),
		).Debug("tile placed")
	}
	return out, nil
}

// placeTile writes one tile into out and returns the number of slots it set.
func (c *Comb) placeTile(out, wavelengths []float64, center float64) (int, error) {
	if !core.IsFinite(center) {
		return 0, fmt.Errorf("%w: %v", ErrCenter, center)
	}

	tile := c.filter.ShiftX(center)
	seed := interp.ClosestIndex(wavelengths, center)

	v, err := interp.Linear(wavelengths[seed], tile.X, tile.Y)
	if err != nil {
		return 0, err
	}
	out[seed] = v
	written := 1

	last := len(wavelengths) - 1
	for j := 1; ; j++ {
		left, right := seed-j, seed+j
		if left < 0 || right > last {
			break
		}
		if math.Abs(wavelengths[right]-wavelengths[seed]) > c.window ||
			math.Abs(wavelengths[seed]-wavelengths[left]) > c.window {
			break
		}

		// both slots take the right-hand sample
		v, err := interp.Linear(wavelengths[right], tile.X, tile.Y)
		if err != nil {
			return written, err
		}
		out[left] = v
		out[right] = v
		written += 2
	}
	return written, nil
}
