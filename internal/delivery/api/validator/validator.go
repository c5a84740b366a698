// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "registrar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError carries the rejected fields of a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+":"+f.Rule)
	}

	return "invalid fields: " + strings.Join(names, ", ")
}

// Unwrap lets the error handler treat it as ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return domainerrors.ErrValidationFailed
}

// Validator validates request DTOs using struct tags.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}

	return out
}
