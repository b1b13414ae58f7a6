// Package repository defines the persistence contracts shared by the domain
// services and their SQLite implementations.
package repository

import (
	"context"

	"github.com/rowanfield/guestgate/internal/domain/account"
	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/domain/gate"
	"github.com/rowanfield/guestgate/internal/domain/guest"
)

// InstallRepository manages install record persistence
type InstallRepository interface {
	Latest(ctx context.Context) (*gate.InstallRecord, error)
	Create(ctx context.Context, rec *gate.InstallRecord) error
}

// CheckinRepository manages live check-in record persistence. Create relies
// on a uniqueness constraint on the guest ID and reports ErrConflict when a
// live record already exists.
type CheckinRepository interface {
	Create(ctx context.Context, rec *checkin.Record) error
	Delete(ctx context.Context, guestID string) error
	GetByGuest(ctx context.Context, guestID string) (*checkin.Record, error)
	ListPresent(ctx context.Context) ([]checkin.Record, error)
}

// GuestRepository manages guest persistence
type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	Get(ctx context.Context, id string) (*guest.Guest, error)
	List(ctx context.Context) ([]guest.Guest, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository manages staff account persistence
type UserRepository interface {
	Create(ctx context.Context, u *account.User) error
	Get(ctx context.Context, id string) (*account.User, error)
	GetByUsername(ctx context.Context, username string) (*account.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// SessionRepository manages auth session persistence
type SessionRepository interface {
	Create(ctx context.Context, sess *account.Session) error
	Get(ctx context.Context, tokenHash string) (*account.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteByUser(ctx context.Context, userID string) error
}
