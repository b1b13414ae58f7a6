package checkin

import "time"

// Record represents a guest currently marked present. It exists from a
// successful check-in until the matching check-out deletes it; a guest has
// at most one live record at any instant.
type Record struct {
	ID          string    `json:"id"`
	GuestID     string    `json:"guest_id"`
	GuestName   string    `json:"guest_name"`
	CheckedInAt time.Time `json:"checked_in_at"`
}
