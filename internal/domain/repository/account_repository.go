// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"registrar/internal/domain/entity"
)

// ErrAccountNotFound is returned when no confirmed account exists for an email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository stores confirmed accounts.
type AccountRepository interface {
	// FindByEmail retrieves an account by its normalized email.
	// It returns ErrAccountNotFound when no account exists.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and assigns its ID and CreatedAt.
	// Creating an account that already exists with the same email and password
	// hash succeeds and fills the stored values, so a retried confirmation is safe.
	Create(ctx context.Context, account *entity.Account) error
}
