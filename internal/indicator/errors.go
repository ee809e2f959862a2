package indicator

import "errors"

var (
	// ErrInvalidExponent is returned when the Hausdorff exponent p is not positive.
	ErrInvalidExponent = errors.New("indicator: exponent p must be positive")

	// ErrNonPositive is returned by the multiplicative epsilon indicator when an
	// objective value is not strictly positive.
	ErrNonPositive = errors.New("indicator: multiplicative epsilon requires strictly positive values")
)
