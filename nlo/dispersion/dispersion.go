package dispersion

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sgostarter/i/l"

	"github.com/cwbudde/algo-qpm/nlo/core"
)

// IndexFunc maps a vacuum wavelength in meters and a temperature in degrees
// Celsius to a refractive index.
type IndexFunc func(wavelength, temperature float64) float64

// Model is an immutable named dispersion model.
type Model struct {
	Name    string
	Crystal string
	Axis    string
	Index   IndexFunc
}

type modelEntry struct {
	name    string
	crystal string
	axis    string
	build   func(opts ...core.Option) (IndexFunc, error)
}

var registry = []modelEntry{
	{"ppln-e", "PPLN", "e-ray", func(opts ...core.Option) (IndexFunc, error) { return PPLN(ERay, opts...) }},
	{"ppln-o", "PPLN", "o-ray", func(opts ...core.Option) (IndexFunc, error) { return PPLN(ORay, opts...) }},
	{"ppktp-z", "PPKTP", "z", func(opts ...core.Option) (IndexFunc, error) { return PPKTP(opts...), nil }},
	{"raicol-ppktp-z", "PPKTP (Raicol)", "z", func(opts ...core.Option) (IndexFunc, error) { return RaicolPPKTP(opts...), nil }},
}

// Names returns the selectors accepted by [Lookup], sorted.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	slices.Sort(names)
	return names
}

// Lookup resolves a model selector such as "ppln-e" or "raicol-ppktp-z".
// Matching ignores case and surrounding whitespace.
func Lookup(name string, opts ...core.Option) (Model, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name != key {
			continue
		}
		idx, err := e.build(opts...)
		if err != nil {
			return Model{}, err
		}
		return Model{Name: e.name, Crystal: e.crystal, Axis: e.axis, Index: idx}, nil
	}
	return Model{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownModel, name, strings.Join(Names(), ", "))
}

// Indices evaluates f at every wavelength. The input is not modified.
func Indices(f IndexFunc, wavelengths []float64, temperature float64) []float64 {
	out := make([]float64, len(wavelengths))
	for i, wl := range wavelengths {
		out[i] = f(wl, temperature)
	}
	return out
}

func logModel(cfg core.Config, name string) {
	cfg.Logger.WithFields(l.StringField(l.ClsKey, "dispersion"), l.StringField("model", name)).
		Debug("index model ready")
}
