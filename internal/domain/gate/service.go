// Package gate decides whether the service is still inside its licensed
// operating window. All mutating routes are gated on its verdict; once the
// trial clock runs out the service degrades to read-only until an explicit
// reset.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	repository "github.com/rowanfield/guestgate/internal/repoerrors"
)

const (
	expiredMessage = "time limit expired; the system is in read-only mode"
	activeMessage  = "trial active"
)

// Service is the single source of truth for the trial clock. It owns the
// in-memory trial duration and the latched expiry flag; the durable install
// record remains the authoritative input across processes.
type Service struct {
	installs InstallRepository
	logger   *slog.Logger
	version  string
	now      func() time.Time

	mu            sync.Mutex
	trialDuration time.Duration
	expired       bool
	installedAt   time.Time
}

// NewService creates a gate service with the default trial duration.
func NewService(installs InstallRepository, version string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		installs:      installs,
		logger:        logger,
		version:       version,
		now:           time.Now,
		trialDuration: DefaultTrialDuration,
	}
}

// CheckStatus recomputes the gate decision from the durable install record.
// Storage failures fail open: a degraded database must not flip the whole
// service into read-only mode on its own.
func (s *Service) CheckStatus(ctx context.Context) Status {
	rec, err := s.installs.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		rec, err = s.provision(ctx)
	}
	if err != nil {
		s.logger.Warn("install record unavailable, gate failing open", "error", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		return Status{
			Expired:       false,
			TimeRemaining: s.trialDuration,
			TimeLimit:     s.trialDuration,
			Message:       activeMessage,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A fresh install record (reset) releases the latch; nothing else does.
	if !rec.InstalledAt.Equal(s.installedAt) {
		s.installedAt = rec.InstalledAt
		s.expired = false
	}

	remaining := s.trialDuration - s.now().Sub(rec.InstalledAt)
	if remaining <= 0 {
		s.expired = true
	}

	status := Status{
		Expired:       s.expired,
		InstalledAt:   rec.InstalledAt,
		TimeRemaining: remaining,
		TimeLimit:     s.trialDuration,
		Message:       activeMessage,
	}
	if s.expired {
		status.Message = expiredMessage
	}
	return status
}

// Reset re-provisions the install record, restarting the trial clock.
// Operator-privileged path; unlike CheckStatus it surfaces storage errors.
func (s *Service) Reset(ctx context.Context) (*InstallRecord, error) {
	rec := &InstallRecord{InstalledAt: s.now(), Version: s.version}
	if err := s.installs.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("resetting install record: %w", err)
	}

	s.mu.Lock()
	s.installedAt = rec.InstalledAt
	s.expired = false
	s.mu.Unlock()

	s.logger.Info("trial clock reset", "installed_at", rec.InstalledAt)
	return rec, nil
}

// SetTrialDuration updates the in-memory trial duration. It takes effect on
// the next CheckStatus call and is not persisted; raising it does not release
// an already-latched expiry.
func (s *Service) SetTrialDuration(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	s.mu.Lock()
	s.trialDuration = d
	s.mu.Unlock()
	return nil
}

// TrialDuration returns the currently configured trial duration.
func (s *Service) TrialDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trialDuration
}

// IsReadOnly reports the latched expiry state from the most recent
// CheckStatus call. It is a same-process fast path for write guards; the
// authoritative decision always comes from CheckStatus.
func (s *Service) IsReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

func (s *Service) provision(ctx context.Context) (*InstallRecord, error) {
	rec := &InstallRecord{InstalledAt: s.now(), Version: s.version}
	if err := s.installs.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("provisioning install record: %w", err)
	}
	s.logger.Info("install record provisioned", "installed_at", rec.InstalledAt)
	return rec, nil
}
