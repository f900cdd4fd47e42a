package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User is the public identity of a shopper
type User struct {
	ID        UserID
	Username  string
	CreatedAt time.Time
}

// Account holds a user's credentials
// Stored separately from User so the hash never travels with a session
type Account struct {
	UserID       UserID
	Username     string // login username, unique (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
