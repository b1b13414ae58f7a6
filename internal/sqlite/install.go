package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rowanfield/guestgate/internal/domain/gate"
	"github.com/rowanfield/guestgate/internal/repository"
)

// InstallRepository implements repository.InstallRepository for SQLite
type InstallRepository struct {
	db *DB
}

// NewInstallRepository creates a new InstallRepository
func NewInstallRepository(db *DB) *InstallRepository {
	return &InstallRepository{db: db}
}

// Latest returns the newest install record. Reset appends rather than
// updates, so the highest rowid is the active record.
func (r *InstallRepository) Latest(ctx context.Context) (*gate.InstallRecord, error) {
	query := `
		SELECT id, installed_at, version
		FROM install_records
		ORDER BY id DESC
		LIMIT 1
	`

	var rec gate.InstallRecord
	err := r.db.QueryRowContext(ctx, query).Scan(&rec.ID, &rec.InstalledAt, &rec.Version)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get install record: %w", err)
	}

	return &rec, nil
}

// Create appends a new install record
func (r *InstallRepository) Create(ctx context.Context, rec *gate.InstallRecord) error {
	query := `
		INSERT INTO install_records (installed_at, version)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, rec.InstalledAt, rec.Version)
	if err != nil {
		return fmt.Errorf("failed to create install record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get install record id: %w", err)
	}
	rec.ID = id

	return nil
}
