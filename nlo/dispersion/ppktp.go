package dispersion

import (
	"math"

	"github.com/cwbudde/algo-qpm/nlo/core"
)

// RaicolRefTemperature is the temperature at which the Raicol correction
// vanishes, in degrees Celsius.
const RaicolRefTemperature = 24.0

// ktpZ evaluates the z-axis KTP fit, λ in micrometers.
func ktpZ(wl float64) float64 {
	wl2 := wl * wl
	return math.Sqrt(4.59423 + 0.06206/(wl2-0.04763) + 110.80672/(wl2-86.12171))
}

// PPKTP returns the z-axis KTP model:
//
//	n = sqrt(4.59423 + 0.06206/(λ²−0.04763) + 110.80672/(λ²−86.12171))
//
// The fit carries no temperature term; temperature is ignored.
func PPKTP(opts ...core.Option) IndexFunc {
	logModel(core.ApplyOptions(opts...), "ppktp-z")

	return func(wavelength, _ float64) float64 {
		return ktpZ(core.MetersToMicrometers(wavelength))
	}
}

// RaicolDnDT returns the thermo-optic coefficient dn/dT (1/°C) of
// Raicol-grown PPKTP at a vacuum wavelength in meters:
//
//	dn/dT = (0.1717/λ³ − 0.5353/λ² + 0.8416/λ + 0.1627)·1e−5
func RaicolDnDT(wavelength float64) float64 {
	wl := core.MetersToMicrometers(wavelength)
	return (0.1717/(wl*wl*wl) - 0.5353/(wl*wl) + 0.8416/wl + 0.1627) * 1e-5
}

// RaicolPPKTP returns the z-axis KTP model with the Raicol temperature
// correction: n(λ, T) = n(λ) + dn/dT(λ)·(T − 24).
func RaicolPPKTP(opts ...core.Option) IndexFunc {
	logModel(core.ApplyOptions(opts...), "raicol-ppktp-z")

	return func(wavelength, temperature float64) float64 {
		base := ktpZ(core.MetersToMicrometers(wavelength))
		return base + RaicolDnDT(wavelength)*(temperature-RaicolRefTemperature)
	}
}
