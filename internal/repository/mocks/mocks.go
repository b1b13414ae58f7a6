// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/rowanfield/guestgate/internal/domain/account"
	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/domain/gate"
	"github.com/rowanfield/guestgate/internal/domain/guest"
	"github.com/stretchr/testify/mock"
)

// InstallRepository is a mock for repository.InstallRepository.
type InstallRepository struct {
	mock.Mock
}

func (m *InstallRepository) Latest(ctx context.Context) (*gate.InstallRecord, error) {
	args := m.Called(ctx)
	if rec, ok := args.Get(0).(*gate.InstallRecord); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InstallRepository) Create(ctx context.Context, rec *gate.InstallRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// CheckinRepository is a mock for repository.CheckinRepository.
type CheckinRepository struct {
	mock.Mock
}

func (m *CheckinRepository) Create(ctx context.Context, rec *checkin.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *CheckinRepository) Delete(ctx context.Context, guestID string) error {
	args := m.Called(ctx, guestID)
	return args.Error(0)
}

func (m *CheckinRepository) GetByGuest(ctx context.Context, guestID string) (*checkin.Record, error) {
	args := m.Called(ctx, guestID)
	if rec, ok := args.Get(0).(*checkin.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CheckinRepository) ListPresent(ctx context.Context) ([]checkin.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]checkin.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// GuestRepository is a mock for repository.GuestRepository.
type GuestRepository struct {
	mock.Mock
}

func (m *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *GuestRepository) Get(ctx context.Context, id string) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*guest.Guest); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestRepository) List(ctx context.Context) ([]guest.Guest, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]guest.Guest); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UserRepository is a mock for repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*account.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*account.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*account.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// SessionRepository is a mock for repository.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, sess *account.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, tokenHash string) (*account.Session, error) {
	args := m.Called(ctx, tokenHash)
	if sess, ok := args.Get(0).(*account.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
