package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrWordNotFound.WrapMessage("word does not exist")

	assert.ErrorIs(t, err, ErrWordNotFound)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "WORD_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Word not found", appErr.Message())
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrUnauthenticated.WithDetails("Authorization header is missing")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.NotErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, "Authorization header is missing", err.Details())
	// The user-facing message stays the sentinel's.
	assert.Equal(t, ErrUnauthenticated.Message(), err.Message())
}

func TestDatabaseExecuteError_HidesInternals(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewDatabaseExecuteError(cause, "inserting user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Internal server error", err.Message())
	assert.NotContains(t, err.Message(), "connection refused")
	assert.Contains(t, err.Error(), "connection refused")
}
