// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. A user owns a private list of words and is
// identified by a normalized login handle.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by storage on insert.
	Name         string    // Display name, stored trimmed and lower-cased.
	Login        string    // Unique login handle, stored trimmed and lower-cased.
	PasswordHash string    // Bcrypt hash of the password. Plaintext is never persisted.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
