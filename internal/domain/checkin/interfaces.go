package checkin

import (
	"context"

	"github.com/rowanfield/guestgate/internal/domain/guest"
)

// Repository provides persistence for live check-in records. Create must be
// backed by a uniqueness guarantee on the guest ID so that of two concurrent
// check-ins for the same guest exactly one succeeds; the loser observes
// repository.ErrConflict.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, guestID string) error
	GetByGuest(ctx context.Context, guestID string) (*Record, error)
	ListPresent(ctx context.Context) ([]Record, error)
}

// GuestRegistry is the external guest directory consulted before admitting
// a check-in.
type GuestRegistry interface {
	Get(ctx context.Context, id string) (*guest.Guest, error)
}
