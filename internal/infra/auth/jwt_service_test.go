package auth

import (
	"testing"
	"time"

	"wordvault/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: ttl},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := testConfig(time.Hour)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_string"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Issue with a TTL that is already in the past.
	jwtService, err := NewJWTService(testConfig(-time.Minute))
	require.NoError(t, err)

	token, err := jwtService.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
