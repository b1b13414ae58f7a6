package gate

import "errors"

var (
	// ErrInvalidDuration indicates a non-positive trial duration.
	ErrInvalidDuration = errors.New("trial duration must be positive")
)
