package poling

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies an apodization profile.
type Type int

const (
	TypeUniform Type = iota
	TypeGaussian
	TypeTukey
	TypeHann
)

// Metadata describes a profile type.
type Metadata struct {
	Name         string
	DefaultAlpha float64
	HasAlpha     bool
}

var metadataByType = map[Type]Metadata{
	TypeUniform:  {Name: "uniform"},
	TypeGaussian: {Name: "gaussian", DefaultAlpha: 2.5, HasAlpha: true},
	TypeTukey:    {Name: "tukey", DefaultAlpha: 0.5, HasAlpha: true},
	TypeHann:     {Name: "hann"},
}

// Option configures profile generation.
type Option func(*config)

type config struct {
	alpha    float64
	alphaSet bool
}

// WithAlpha sets the shape parameter: Gaussian steepness (envelope falls
// to 1/2 at |2x-1|·alpha = 1) or Tukey taper fraction in [0,1].
// Negative values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
			c.alphaSet = true
		}
	}
}

// Info returns static metadata for a profile type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// Types lists the supported profile types in declaration order.
func Types() []Type {
	return []Type{TypeUniform, TypeGaussian, TypeTukey, TypeHann}
}

// Parse resolves a profile name such as "gaussian", ignoring case.
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if metadataByType[t].Name == name {
			return t, nil
		}
	}
	return TypeUniform, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Generate returns the envelope sampled at length points spanning the
// crystal, both faces included. Unknown types yield a uniform profile and
// a length <= 0 yields nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if validateLength(length) != nil {
		return nil
	}

	cfg := config{alpha: Info(t).DefaultAlpha}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalProfile(t, samplePosition(i, length), cfg.alpha)
	}
	return out
}

// Apply multiplies buf in place by the selected profile.
func Apply(t Type, buf []float64, opts ...Option) error {
	if err := validateLength(len(buf)); err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
	return nil
}

// EffectiveCoefficient returns d_eff/d for a rectangular grating of the
// given duty cycle and QPM order m: (2/(mπ))·|sin(mπD)|.
func EffectiveCoefficient(duty float64, order int) (float64, error) {
	if err := validateDutyCycle(duty, order); err != nil {
		return 0, err
	}
	m := float64(order)
	return 2 / (m * math.Pi) * math.Abs(math.Sin(m*math.Pi*duty)), nil
}

func evalProfile(t Type, x, alpha float64) float64 {
	switch t {
	case TypeGaussian:
		v := (2*x - 1) * alpha
		return math.Exp(-math.Ln2 * v * v)
	case TypeTukey:
		return tukeyAt(x, alpha)
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	default:
		return 1
	}
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0.5
	}
	return float64(n) / float64(size-1)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}
	if alpha >= 1 {
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
