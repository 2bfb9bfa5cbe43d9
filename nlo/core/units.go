package core

// SpeedOfLight is the vacuum speed of light in m/s.
const SpeedOfLight = 299792458.0

// Length scale factors relative to one meter.
const (
	Meter      = 1.0
	Micrometer = 1e-6
	Nanometer  = 1e-9
	Centimeter = 1e-2
)

// MetersToMicrometers rescales a wavelength from meters to micrometers.
// Sellmeier coefficients are fitted in micrometers.
func MetersToMicrometers(m float64) float64 {
	return m / Micrometer
}

// MicrometersToMeters rescales a wavelength from micrometers to meters.
func MicrometersToMeters(um float64) float64 {
	return um * Micrometer
}

// NanometersToMeters rescales a wavelength from nanometers to meters.
func NanometersToMeters(nm float64) float64 {
	return nm * Nanometer
}

// MetersToNanometers rescales a wavelength from meters to nanometers.
func MetersToNanometers(m float64) float64 {
	return m / Nanometer
}

// FrequencyToWavelength returns the vacuum wavelength in meters for an
// optical frequency in Hz. Returns +Inf for zero frequency.
func FrequencyToWavelength(hz float64) float64 {
	return SpeedOfLight / hz
}

// WavelengthToFrequency returns the optical frequency in Hz for a vacuum
// wavelength in meters.
func WavelengthToFrequency(m float64) float64 {
	return SpeedOfLight / m
}
