// Package guest manages the invitee registry. Check-in records are
// foreign-keyed to guests, so deleting a guest cascades away any live
// presence record.
package guest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	repository "github.com/rowanfield/guestgate/internal/repoerrors"
)

// Service handles guest registry operations.
type Service struct {
	guests Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new guest service.
func NewService(guests Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{guests: guests, logger: logger, now: time.Now}
}

// Create registers a guest. The server-assigned UUID is the credential
// encoded into the guest's QR code.
func (s *Service) Create(ctx context.Context, name, email string) (*Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	g := &Guest{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		CreatedAt: s.now(),
	}
	if err := s.guests.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("creating guest: %w", err)
	}

	s.logger.Info("guest registered", "guest_id", g.ID, "name", g.Name)
	return g, nil
}

// Get returns a guest by ID.
func (s *Service) Get(ctx context.Context, id string) (*Guest, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	g, err := s.guests.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading guest: %w", err)
	}
	return g, nil
}

// List returns all registered guests.
func (s *Service) List(ctx context.Context) ([]Guest, error) {
	guests, err := s.guests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing guests: %w", err)
	}
	return guests, nil
}

// Delete removes a guest; any live check-in record goes with it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.guests.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting guest: %w", err)
	}
	s.logger.Info("guest deleted", "guest_id", id)
	return nil
}
