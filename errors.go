package curve

import "errors"

// Sentinel error kinds returned by this package. Functions wrap these with
// context using fmt.Errorf and %w; callers match them with errors.Is.
var (
	// ErrInvalidArgument is returned when a constructor or sampling function
	// is given control data it cannot work with, such as too few control
	// points or a negative refinement degree.
	ErrInvalidArgument = errors.New("curve: invalid argument")

	// ErrNumericalFailure is returned when a numerical procedure cannot
	// produce a trustworthy result, such as a least-squares fit with a
	// singular or ill-conditioned system.
	ErrNumericalFailure = errors.New("curve: numerical failure")

	// ErrUnsupportedDerivative is returned when a curve is asked for a
	// derivative order it cannot produce.
	ErrUnsupportedDerivative = errors.New("curve: unsupported derivative order")
)
