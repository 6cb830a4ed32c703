package usecase

import (
	"context"

	"wordvault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateWordInput defines the data required to create a word.
type CreateWordInput struct {
	Native    string
	Translate string
}

// EditWordInput defines the data required to edit an existing word.
type EditWordInput struct {
	ID        uuid.UUID
	Native    string
	Translate string
}

// WordUsecase defines the interface for vocabulary operations. Every method
// takes the authenticated owner's ID resolved by the auth middleware; a word
// is never readable or writable by anyone but its owner.
type WordUsecase interface {
	// Create adds a word to the owner's list, rejecting duplicates of the
	// normalized native term.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateWordInput) (*entity.Word, error)

	// List returns all of the owner's words in insertion order.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Word, error)

	// Edit updates the word matched by (input.ID, ownerID). The duplicate
	// check excludes the word being edited, so re-saving its own native term
	// succeeds.
	Edit(ctx context.Context, ownerID uuid.UUID, input *EditWordInput) (*entity.Word, error)

	// Delete removes the word matched by (id, ownerID).
	Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
}
