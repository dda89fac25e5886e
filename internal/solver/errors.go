package solver

import "errors"

var (
	// ErrInvalidRange reports a minimum bound above its maximum.
	ErrInvalidRange = errors.New("minimum bound exceeds maximum bound")

	// ErrInvalidCount reports a bound outside the allowed domain,
	// e.g. a negative tribute count or a level below 1.
	ErrInvalidCount = errors.New("bound outside allowed range")
)
