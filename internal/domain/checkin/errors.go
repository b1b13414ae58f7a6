package checkin

import "errors"

var (
	// ErrGuestNotFound indicates the guest does not exist in the registry.
	ErrGuestNotFound = errors.New("guest not found")
	// ErrAlreadyCheckedIn indicates a live record already exists for the guest.
	ErrAlreadyCheckedIn = errors.New("guest already checked in")
	// ErrNotCheckedIn indicates no live record exists for the guest.
	ErrNotCheckedIn = errors.New("guest not checked in")
	// ErrStorageUnavailable indicates the durable store could not complete
	// the operation; the ledger fails closed and the action is rejected.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidInput indicates missing or malformed check-in input.
	ErrInvalidInput = errors.New("invalid check-in input")
)
