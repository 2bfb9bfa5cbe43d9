package dispersion

import "errors"

var (
	// ErrUnknownPolarization reports a polarization outside {e-ray, o-ray}.
	ErrUnknownPolarization = errors.New("dispersion: unknown polarization")
	// ErrUnknownModel reports an unsupported crystal/axis selector.
	ErrUnknownModel = errors.New("dispersion: unknown crystal model")
)
