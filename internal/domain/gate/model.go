package gate

import "time"

// DefaultTrialDuration is the operating window granted to a fresh install.
const DefaultTrialDuration = 20 * time.Minute

// InstallRecord marks the one-time provisioning event the trial clock
// is measured from. Reset appends a new record; the newest one wins.
type InstallRecord struct {
	ID          int64     `json:"id"`
	InstalledAt time.Time `json:"installed_at"`
	Version     string    `json:"version"`
}

// Status is the gate decision derived from the install record, the
// configured trial duration and the current time. It is never persisted.
type Status struct {
	Expired       bool          `json:"expired"`
	InstalledAt   time.Time     `json:"installed_at"`
	TimeRemaining time.Duration `json:"time_remaining"`
	TimeLimit     time.Duration `json:"time_limit"`
	Message       string        `json:"message"`
}
