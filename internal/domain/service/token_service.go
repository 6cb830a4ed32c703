package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed,
// time-limited identity tokens handed out at login. Tokens are self-contained;
// nothing is stored server-side and expiry is the only invalidation.
type TokenService interface {
	// Generate creates a signed token embedding the user's identity with an
	// absolute expiry one hour from issuance (configurable).
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the embedded claims.
	// Any failure (bad signature, malformed payload, expired) is an error;
	// there is no leeway window.
	Validate(tokenString string) (*Claims, error)
}
