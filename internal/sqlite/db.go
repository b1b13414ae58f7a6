// Package sqlite implements the repository interfaces on SQLite.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Foreign keys drive the guest -> check-in cascade; the busy timeout
	// keeps concurrent writers from surfacing SQLITE_BUSY to callers.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations applies the schema directly (for testing)
// In production, migrations are applied from the embedded migrations package.
func (db *DB) RunMigrations() error {
	migration := `
-- Install records: append-on-reset, newest row is the active one
CREATE TABLE install_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    installed_at TIMESTAMP NOT NULL,
    version TEXT NOT NULL DEFAULT ''
);

-- Guest registry
CREATE TABLE guests (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Live check-ins: one row per currently-present guest.
CREATE TABLE checkins (
    id TEXT PRIMARY KEY,
    guest_id TEXT NOT NULL UNIQUE,
    guest_name TEXT NOT NULL,
    checked_in_at TIMESTAMP NOT NULL,
    FOREIGN KEY (guest_id) REFERENCES guests(id) ON DELETE CASCADE
);
CREATE INDEX idx_checkins_checked_in_at ON checkins(checked_in_at);

-- Staff accounts
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Auth sessions, keyed by SHA-256 of the bearer token
CREATE TABLE sessions (
    token_hash TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    expires_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX idx_sessions_user ON sessions(user_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
