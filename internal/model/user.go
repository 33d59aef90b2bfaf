package model

import "time"

// User represents a registered account.
// PasswordHash is never serialized; only the auth layer reads it.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Department   Department `json:"department,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UploaderRef is the projection of a user attached to documents.
// It exposes identity fields only, never credential data.
type UploaderRef struct {
	Email      string     `json:"email"`
	Department Department `json:"department,omitempty"`
}
