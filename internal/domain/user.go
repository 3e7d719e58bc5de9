package domain

import "time"

// User represents a registered account.
type User struct {
	ID            int64
	Email         string
	Name          string
	PasswordHash  string
	Theme         string
	Notifications bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Preferences is the user-tunable subset of a User.
type Preferences struct {
	Theme         string
	Notifications bool
}
