package account

import "time"

// User is a staff account for the admin console and scanner clients.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a live authentication token, stored by the SHA-256 hash of the
// bearer token. A token is only accepted while its session row exists and
// has not expired; logout and password change delete rows.
type Session struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
