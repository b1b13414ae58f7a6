package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing. The pool is
// capped at one connection so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")
	db.SetMaxOpenConns(1)

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func insertGuest(t *testing.T, db *DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO guests (id, name) VALUES (?, ?)`, id, name)
	require.NoError(t, err)
}

func insertUser(t *testing.T, db *DB, id, username string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)`, id, username, "x")
	require.NoError(t, err)
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"install_records",
		"guests",
		"checkins",
		"users",
		"sessions",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestCheckinsTable verifies the uniqueness and cascade constraints that the
// ledger's correctness depends on
func TestCheckinsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertGuest(t, db, "g1", "Alice")

	_, err := db.ExecContext(ctx,
		`INSERT INTO checkins (id, guest_id, guest_name, checked_in_at) VALUES (?, ?, ?, ?)`,
		"c1", "g1", "Alice", time.Now())
	require.NoError(t, err)

	// Second live record for the same guest must violate UNIQUE
	_, err = db.ExecContext(ctx,
		`INSERT INTO checkins (id, guest_id, guest_name, checked_in_at) VALUES (?, ?, ?, ?)`,
		"c2", "g1", "Alice", time.Now())
	require.Error(t, err, "duplicate live check-in should fail")
	require.True(t, isUniqueViolation(err))

	// Unknown guest must violate the foreign key
	_, err = db.ExecContext(ctx,
		`INSERT INTO checkins (id, guest_id, guest_name, checked_in_at) VALUES (?, ?, ?, ?)`,
		"c3", "nope", "Ghost", time.Now())
	require.Error(t, err, "check-in for unknown guest should fail")
	require.True(t, isForeignKeyViolation(err))

	// Deleting the guest cascades away the live record
	_, err = db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, "g1")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM checkins`).Scan(&count))
	require.Equal(t, 0, count, "guest deletion should cascade to check-ins")
}

// TestSessionsTable verifies the user -> session cascade
func TestSessionsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertUser(t, db, "u1", "alice")

	_, err := db.ExecContext(ctx,
		`INSERT INTO sessions (token_hash, user_id, expires_at) VALUES (?, ?, ?)`,
		"h1", "u1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, "u1")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count))
	require.Equal(t, 0, count, "user deletion should cascade to sessions")
}
