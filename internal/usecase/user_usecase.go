// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wordvault/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Login    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Login    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account. It succeeds silently; there is no
	// auto-login and nothing sensitive is returned.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies the credentials and issues a signed identity token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
