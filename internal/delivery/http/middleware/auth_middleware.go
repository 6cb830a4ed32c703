package middleware

import (
	"strings"

	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keyUserID is where Authenticate stores the caller's identity on the
// echo context for handlers to read back.
const keyUserID = "userID"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization bearer token and stores the
// authenticated user ID on the context. Any failure — missing header, wrong
// scheme, bad or expired token — yields a 401 through the error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired.WrapMessage("access token expired")
			}

			return domainerrors.ErrUnauthenticated.WithDetails("Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)

		return next(c)
	}
}

// GetUserID reads the authenticated user ID that Authenticate stored on the
// context. The boolean is false on routes that skipped authentication.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}
