package poling

import (
	"errors"
	"fmt"
)

// ErrUnknownType reports an unsupported profile name.
var ErrUnknownType = errors.New("poling: unknown profile type")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("poling: profile size must be > 0: %d", size)
	}
	return nil
}

func validateDutyCycle(duty float64, order int) error {
	if !(duty >= 0 && duty <= 1) {
		return fmt.Errorf("poling: duty cycle must be in [0,1]: %f", duty)
	}
	if order <= 0 {
		return fmt.Errorf("poling: QPM order must be > 0: %d", order)
	}
	return nil
}
