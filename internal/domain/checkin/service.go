// Package checkin enforces the guest presence state machine: a guest moves
// Absent -> Present on check-in and Present -> Absent on check-out, with
// at-most-one live record per guest at any instant.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rowanfield/guestgate/internal/domain/guest"
	repository "github.com/rowanfield/guestgate/internal/repoerrors"
)

// Service handles check-in and check-out operations.
type Service struct {
	records Repository
	guests  GuestRegistry
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new check-in service.
func NewService(records Repository, guests GuestRegistry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		records: records,
		guests:  guests,
		logger:  logger,
		now:     time.Now,
	}
}

// CheckInRequest describes a check-in attempt.
type CheckInRequest struct {
	GuestID   string
	Name      string
	Timestamp *time.Time
}

// CheckIn marks a guest present. The uniqueness constraint in the store is
// what settles concurrent attempts for the same guest: the insert either
// lands or reports a conflict, never both.
func (s *Service) CheckIn(ctx context.Context, req CheckInRequest) (*Record, error) {
	if req.GuestID == "" {
		return nil, ErrInvalidInput
	}

	g, err := s.guests.Get(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guest.ErrNotFound) || errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, s.storageErr("loading guest", err)
	}

	name := req.Name
	if name == "" {
		name = g.Name
	}

	checkedInAt := s.now()
	if req.Timestamp != nil {
		checkedInAt = *req.Timestamp
	}

	rec := &Record{
		ID:          uuid.NewString(),
		GuestID:     g.ID,
		GuestName:   name,
		CheckedInAt: checkedInAt,
	}

	err = s.withRetry(func() error { return s.records.Create(ctx, rec) })
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrAlreadyCheckedIn
		case errors.Is(err, repository.ErrForeignKeyViolation):
			// Guest deleted between the registry lookup and the insert.
			return nil, ErrGuestNotFound
		default:
			return nil, s.storageErr("creating check-in record", err)
		}
	}

	s.logger.Info("guest checked in", "guest_id", rec.GuestID, "name", rec.GuestName)
	return rec, nil
}

// CheckOut marks a guest absent by deleting the live record. Checking out a
// guest who is not present is an error, not a no-op; the scanner UI relies
// on the distinction.
func (s *Service) CheckOut(ctx context.Context, guestID string) error {
	if guestID == "" {
		return ErrInvalidInput
	}

	err := s.withRetry(func() error { return s.records.Delete(ctx, guestID) })
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotCheckedIn
		}
		return s.storageErr("deleting check-in record", err)
	}

	s.logger.Info("guest checked out", "guest_id", guestID)
	return nil
}

// ListPresent returns all live records, most recent check-in first.
func (s *Service) ListPresent(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.withRetry(func() error {
		var lerr error
		records, lerr = s.records.ListPresent(ctx)
		return lerr
	})
	if err != nil {
		return nil, s.storageErr("listing present guests", err)
	}
	return records, nil
}

// withRetry retries a storage call once on a transient failure. Domain
// outcomes (conflict, not found, foreign key) are decisions rather than
// faults and are never retried.
func (s *Service) withRetry(fn func() error) error {
	err := fn()
	if err == nil || isDomainOutcome(err) {
		return err
	}
	s.logger.Warn("storage call failed, retrying once", "error", err)
	return fn()
}

func isDomainOutcome(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrConflict) ||
		errors.Is(err, repository.ErrForeignKeyViolation)
}

func (s *Service) storageErr(op string, err error) error {
	s.logger.Error("ledger storage failure", "op", op, "error", err)
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
