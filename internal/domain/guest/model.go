package guest

import "time"

// Guest is an invitee. The ID doubles as the QR payload printed on the
// guest's credential.
type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
