// Package account handles staff authentication: credential verification,
// token issuance, and session revocation. A bearer token is only valid while
// both the signature checks out and a matching unexpired session row exists.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rowanfield/guestgate/internal/auth"
	repository "github.com/rowanfield/guestgate/internal/repoerrors"
	"golang.org/x/crypto/bcrypt"
)

// Service handles account and session operations.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	tokens   auth.TokenConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new account service.
func NewService(users UserRepository, sessions SessionRepository, tokens auth.TokenConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// LoginResult holds a freshly issued token and its owner.
type LoginResult struct {
	Token     string
	User      *User
	ExpiresAt time.Time
}

// Login verifies credentials and issues a bearer token backed by a session
// row. Unknown usernames and wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.CreateToken(u.ID, s.tokens)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	expiresAt := s.now().Add(s.tokens.Expiry)
	sess := &Session{
		TokenHash: auth.HashToken(token),
		UserID:    u.ID,
		ExpiresAt: expiresAt,
		CreatedAt: s.now(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	s.logger.Info("user logged in", "user_id", u.ID, "username", u.Username)
	return &LoginResult{Token: token, User: u, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session backing the given token. Revoking a token that
// is already gone is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.sessions.Delete(ctx, auth.HashToken(token))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

// ChangePassword re-hashes the password and revokes every session of the
// user before returning, so no previously issued token survives the change.
func (s *Service) ChangePassword(ctx context.Context, userID, current, updated string) error {
	if userID == "" || updated == "" {
		return ErrInvalidInput
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	if err := s.sessions.DeleteByUser(ctx, u.ID); err != nil {
		return fmt.Errorf("revoking sessions: %w", err)
	}

	s.logger.Info("password changed, sessions revoked", "user_id", u.ID)
	return nil
}

// ValidateToken checks a bearer token end to end: signature, then the
// session row. Malformed, expired and revoked tokens all collapse into
// ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := auth.VerifyToken(token, s.tokens)
	if err != nil {
		return "", ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, auth.HashToken(token))
	if err != nil {
		return "", ErrUnauthorized
	}
	if s.now().After(sess.ExpiresAt) {
		return "", ErrUnauthorized
	}
	if sess.UserID != claims.UserID {
		return "", ErrUnauthorized
	}

	return claims.UserID, nil
}

// EnsureUser creates a staff account if the username is free; used to
// bootstrap the initial admin from configuration.
func (s *Service) EnsureUser(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "username", u.Username)
	return u, nil
}
