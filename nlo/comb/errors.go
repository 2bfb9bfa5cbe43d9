package comb

import "errors"

var (
	// ErrAnchor reports an anchor index outside the filter curve.
	ErrAnchor = errors.New("comb: anchor index out of range")
	// ErrCenter reports a NaN or infinite channel center.
	ErrCenter = errors.New("comb: channel center must be finite")
	// ErrUnsorted reports a wavelength axis that does not ascend.
	ErrUnsorted = errors.New("comb: wavelength axis must ascend")
)
