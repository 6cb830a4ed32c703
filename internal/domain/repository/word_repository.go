package repository

import (
	"context"
	"errors"

	"wordvault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWordNotFound is returned when no word matches the given (id, owner) pair.
var ErrWordNotFound = errors.New("word not found")

// WordRepository defines the standard operations for word persistence. Every
// query is scoped by the owning user; there is no cross-owner access path.
type WordRepository interface {
	// Create persists a new word and fills in the generated ID and timestamps.
	Create(ctx context.Context, word *entity.Word) error

	// FindByOwner retrieves all words owned by the given user in insertion order.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Word, error)

	// FindByOwnerAndNative retrieves the owner's word with the given normalized
	// native term. When excludeID is non-nil, a word with that ID is ignored,
	// which lets an edit re-use its own native term. Returns ErrWordNotFound
	// when no such word exists.
	FindByOwnerAndNative(ctx context.Context, ownerID uuid.UUID, native string, excludeID *uuid.UUID) (*entity.Word, error)

	// Update rewrites the native/translate pair of the word matched by
	// (word.ID, word.UserID). Returns ErrWordNotFound when zero rows match,
	// which covers both an unknown ID and a word owned by someone else.
	Update(ctx context.Context, word *entity.Word) error

	// Delete removes the word matched by (id, ownerID). Returns
	// ErrWordNotFound when zero rows match.
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
