package dispersion

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-qpm/nlo/core"
)

// Polarization selects the PPLN coefficient set.
type Polarization int

const (
	ERay Polarization = iota
	ORay
)

// PPLNRefTemperature is T0 of the temperature-dependent fit, in degrees Celsius.
const PPLNRefTemperature = 24.5

// String implements fmt.Stringer.
func (p Polarization) String() string {
	switch p {
	case ERay:
		return "e-ray"
	case ORay:
		return "o-ray"
	default:
		return fmt.Sprintf("Polarization(%d)", int(p))
	}
}

// ParsePolarization accepts "e", "eray", "e-ray" and the o-ray equivalents.
func ParsePolarization(s string) (Polarization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "eray", "e-ray":
		return ERay, nil
	case "o", "oray", "o-ray":
		return ORay, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolarization, s)
}

type pplnCoeffs struct {
	a1, a2, a3, a4 float64
	b1, b2, b3     float64
}

// Edwards & Lawrence (1984) fit, wavelength in micrometers.
var pplnFits = map[Polarization]pplnCoeffs{
	ERay: {a1: 4.9048, a2: 0.11775, a3: 0.21802, a4: 0.027153, b1: 2.2314e-8, b2: -2.9671e-8, b3: 2.1429e-8},
	ORay: {a1: 4.582, a2: 0.09921, a3: 0.2109, a4: 0.02194, b1: 5.2716e-8, b2: -4.91431e-8, b3: 2.2971e-7},
}

// PPLN returns the temperature-dependent Sellmeier model of lithium niobate
// for the given polarization:
//
//	n² = A1 + (A2 + B1·F)/(λ² − (A3 + B2·F)²) + B3·F − A4·λ²
//	F  = (T − T0)(T + T0 + 546)
//
// with λ in micrometers and T0 = 24.5 °C.
func PPLN(pol Polarization, opts ...core.Option) (IndexFunc, error) {
	c, ok := pplnFits[pol]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolarization, pol)
	}

	logModel(core.ApplyOptions(opts...), "ppln-"+pol.String())

	return func(wavelength, temperature float64) float64 {
		wl := core.MetersToMicrometers(wavelength)
		f := (temperature - PPLNRefTemperature) * (temperature + PPLNRefTemperature + 546)
		pole := c.a3 + c.b2*f
		wl2 := wl * wl
		return math.Sqrt(c.a1 + (c.a2+c.b1*f)/(wl2-pole*pole) + c.b3*f - c.a4*wl2)
	}, nil
}
