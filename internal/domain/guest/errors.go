package guest

import "errors"

var (
	// ErrNotFound indicates the guest doesn't exist.
	ErrNotFound = errors.New("guest not found")
	// ErrInvalidInput indicates invalid guest input.
	ErrInvalidInput = errors.New("invalid guest input")
)
