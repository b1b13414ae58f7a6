package account

import "context"

// UserRepository provides persistence for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// SessionRepository provides persistence for auth sessions.
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, tokenHash string) (*Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteByUser(ctx context.Context, userID string) error
}
