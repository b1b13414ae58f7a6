package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/repository"
)

// CheckinRepository implements repository.CheckinRepository for SQLite
type CheckinRepository struct {
	db *DB
}

// NewCheckinRepository creates a new CheckinRepository
func NewCheckinRepository(db *DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// Create inserts a live check-in record. The UNIQUE constraint on guest_id
// settles concurrent check-ins for the same guest: the losing insert maps
// to repository.ErrConflict.
func (r *CheckinRepository) Create(ctx context.Context, rec *checkin.Record) error {
	query := `
		INSERT INTO checkins (id, guest_id, guest_name, checked_in_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.GuestID, rec.GuestName, rec.CheckedInAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create check-in: %w", err)
	}

	return nil
}

// Delete removes the live record for a guest
func (r *CheckinRepository) Delete(ctx context.Context, guestID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checkins WHERE guest_id = ?`, guestID)
	if err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
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

// GetByGuest returns the live record for a guest
func (r *CheckinRepository) GetByGuest(ctx context.Context, guestID string) (*checkin.Record, error) {
	query := `
		SELECT id, guest_id, guest_name, checked_in_at
		FROM checkins
		WHERE guest_id = ?
	`

	var rec checkin.Record
	err := r.db.QueryRowContext(ctx, query, guestID).Scan(
		&rec.ID,
		&rec.GuestID,
		&rec.GuestName,
		&rec.CheckedInAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}

	return &rec, nil
}

// ListPresent returns all live records, most recent check-in first
func (r *CheckinRepository) ListPresent(ctx context.Context) ([]checkin.Record, error) {
	query := `
		SELECT id, guest_id, guest_name, checked_in_at
		FROM checkins
		ORDER BY checked_in_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var records []checkin.Record
	for rows.Next() {
		var rec checkin.Record
		if err := rows.Scan(&rec.ID, &rec.GuestID, &rec.GuestName, &rec.CheckedInAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-ins: %w", err)
	}

	return records, nil
}
