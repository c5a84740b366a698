package validator

import (
	"testing"

	domainerrors "registrar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&loginRequest{Email: "jane@example.com", Password: "x"}))
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&loginRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "required"},
	}, verr.Fields)
}
