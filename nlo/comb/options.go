package comb

import (
	"github.com/sgostarter/i/l"

	"github.com/cwbudde/algo-qpm/nlo/core"
)

const (
	// DefaultWindow is the half-width, in axis units, a tile may extend
	// from its seed sample.
	DefaultWindow = 0.2
	// DefaultAnchor is the reference sample of the 50 GHz vendor filter
	// trace the comb was first built from.
	DefaultAnchor = 496
	noAnchor      = -1
)

// Option configures a Comb.
type Option func(*config)

type config struct {
	window float64
	anchor int
	core   []core.Option
}

func defaultConfig() config {
	return config{
		window: DefaultWindow,
		anchor: noAnchor,
	}
}

// WithWindow sets the tile half-width in axis units. Non-positive or NaN
// values are ignored.
func WithWindow(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.window = w
		}
	}
}

// WithAnchor recenters the filter so that sample idx sits on each channel
// center. Without it the filter x axis is taken as already relative to the
// center and is shifted by the center value as is.
func WithAnchor(idx int) Option {
	return func(c *config) {
		c.anchor = idx
	}
}

// WithLogger injects a debug logger.
func WithLogger(logger l.Wrapper) Option {
	return func(c *config) {
		c.core = append(c.core, core.WithLogger(logger))
	}
}
