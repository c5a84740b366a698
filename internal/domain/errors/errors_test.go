package errors

import (
	"net/http"
	"testing"

	"registrar/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapKeepsIdentity(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("login failed")

	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.False(t, errors.Is(err, ErrAccountLocked))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: must be a valid email address")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "email: must be a valid email address", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create account")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create account", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
