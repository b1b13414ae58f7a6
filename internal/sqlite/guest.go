package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rowanfield/guestgate/internal/domain/guest"
	"github.com/rowanfield/guestgate/internal/repository"
)

// GuestRepository implements repository.GuestRepository for SQLite
type GuestRepository struct {
	db *DB
}

// NewGuestRepository creates a new GuestRepository
func NewGuestRepository(db *DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create registers a guest
func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	query := `
		INSERT INTO guests (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, g.ID, g.Name, nullString(g.Email), g.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

// Get retrieves a guest by ID
func (r *GuestRepository) Get(ctx context.Context, id string) (*guest.Guest, error) {
	query := `
		SELECT id, name, email, created_at
		FROM guests
		WHERE id = ?
	`

	var g guest.Guest
	var email sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &email, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	if email.Valid {
		g.Email = email.String
	}

	return &g, nil
}

// List returns all guests ordered by name
func (r *GuestRepository) List(ctx context.Context) ([]guest.Guest, error) {
	query := `
		SELECT id, name, email, created_at
		FROM guests
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []guest.Guest
	for rows.Next() {
		var g guest.Guest
		var email sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &email, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		if email.Valid {
			g.Email = email.String
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guests: %w", err)
	}

	return guests, nil
}

// Delete removes a guest; the foreign key cascades away any live check-in
func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
