package entity

import (
	"time"

	"github.com/google/uuid"
)

// Word is a single native/translation vocabulary pair. Every word belongs to
// exactly one user; for a given owner the normalized native term is unique.
type Word struct {
	ID        uuid.UUID // The unique identifier for the word.
	UserID    uuid.UUID // The owning user. Words are never visible across owners.
	Native    string    // Source-language term, stored trimmed and lower-cased.
	Translate string    // Target-language term, stored trimmed and lower-cased.
	CreatedAt time.Time
	UpdatedAt time.Time
}
