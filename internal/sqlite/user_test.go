package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rowanfield/guestgate/internal/domain/account"
	"github.com/rowanfield/guestgate/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	u := &account.User{ID: "u1", Username: "alice", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", byName.ID)
}

func TestUserRepository_DuplicateUsernameIsConflict(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &account.User{ID: "u1", Username: "alice", PasswordHash: "x", CreatedAt: now}))
	err := repo.Create(ctx, &account.User{ID: "u2", Username: "alice", PasswordHash: "x", CreatedAt: now})
	require.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.Create(ctx, &account.User{ID: "u1", Username: "alice", PasswordHash: "old", CreatedAt: time.Now()}))
	require.NoError(t, repo.UpdatePassword(ctx, "u1", "new"))

	u, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "new", u.PasswordHash)

	require.ErrorIs(t, repo.UpdatePassword(ctx, "missing", "x"), repository.ErrNotFound)
}
