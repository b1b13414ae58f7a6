package repository

import "github.com/rowanfield/guestgate/internal/repoerrors"

// The sentinel errors are defined in the leaf package repoerrors and
// re-exported here so existing repository.Err* references keep working;
// errors.Is matches across both names because the values are identical.
var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = repoerrors.ErrNotFound

	// ErrConflict is returned when a uniqueness constraint rejects a write
	ErrConflict = repoerrors.ErrConflict

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = repoerrors.ErrForeignKeyViolation

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = repoerrors.ErrInvalidInput
)
