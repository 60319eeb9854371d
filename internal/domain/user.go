package domain

import "time"

// User represents a registered account. Name doubles as the login handle.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
