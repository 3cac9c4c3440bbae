package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRecord is one registered account as persisted in the local user store.
// Email is the natural key; Password is stored exactly as entered.
type UserRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session describes an authenticated user for the lifetime of the app run.
// It is never persisted.
type Session struct {
	ID        uuid.UUID
	Email     string
	StartedAt time.Time
}

// NewSession starts a session for email.
func NewSession(email string) *Session {
	return &Session{
		ID:        uuid.New(),
		Email:     email,
		StartedAt: time.Now().UTC(),
	}
}
