package account

import "errors"

var (
	// ErrInvalidCredentials covers unknown users and wrong passwords alike;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized indicates a token that is malformed, expired or
	// revoked. The three cases are deliberately indistinguishable.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput indicates missing or malformed account input.
	ErrInvalidInput = errors.New("invalid account input")
)
