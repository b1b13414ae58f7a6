// Package repoerrors holds the sentinel errors shared by the repository
// contracts and the domain services. It lives in a leaf package so that the
// domain packages can reference the sentinels without importing
// internal/repository, whose interfaces reference domain types.
package repoerrors

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness constraint rejects a write
	ErrConflict = errors.New("conflict: entity already exists")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
