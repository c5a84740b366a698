// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
)

// --- Input DTOs ---

// RegisterInput defines the data required to start a registration.
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// ConfirmInput carries the one-time code the user received by email.
type ConfirmInput struct {
	Email string
	Code  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput reports whether a registration was accepted. A rejected
// registration carries the business reason; it is not returned as an error.
type RegisterOutput struct {
	Accepted bool
	Message  string
	Reason   domainerrors.AppError
}

// ConfirmOutput reports whether a confirmation created the account.
type ConfirmOutput struct {
	Confirmed bool
	Message   string
	Reason    domainerrors.AppError
}

// LoginOutput returns the signed access token and the account without its password hash.
type LoginOutput struct {
	Account     *entity.Account
	AccessToken string
}

// AuthUsecase defines registration, email confirmation and login.
// Register and Confirm only return an error for infrastructure failures; Login
// returns ErrAccountLocked or ErrInvalidCredentials for rejected attempts.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
