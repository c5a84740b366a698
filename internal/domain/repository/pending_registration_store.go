package repository

import (
	"context"
	"errors"

	"registrar/internal/domain/entity"
)

// Pending registration store outcomes.
var (
	ErrPendingExists     = errors.New("pending registration already exists")
	ErrPendingNotFound   = errors.New("pending registration not found")
	ErrPendingExpired    = errors.New("pending registration expired")
	ErrPendingMismatch   = errors.New("confirmation code mismatch")
	ErrPendingInProgress = errors.New("confirmation in progress")
)

// PendingRegistrationStore holds unconfirmed registrations keyed by normalized email.
// Every operation is atomic per email; different emails do not contend.
type PendingRegistrationStore interface {
	// Create stores a new registration with a fresh code and returns it.
	// A live entry for the email yields ErrPendingExists; an expired one is replaced.
	Create(ctx context.Context, reg *entity.PendingRegistration) (*entity.PendingRegistration, error)

	// Get returns a copy of the entry without touching it. Expiry is the caller's concern.
	Get(ctx context.Context, email string) (*entity.PendingRegistration, bool)

	// Confirm validates code and expiry. An expired entry is deleted and ErrPendingExpired
	// returned; a wrong code yields ErrPendingMismatch and keeps the entry. On a match the
	// entry is claimed and returned: it stays in the store, invisible to other confirms,
	// until Complete or Release is called.
	Confirm(ctx context.Context, email, code string) (*entity.PendingRegistration, error)

	// Complete deletes a claimed entry once the account has been persisted.
	Complete(ctx context.Context, email string)

	// Release returns a claimed entry to the confirmable state after a failed persist.
	Release(ctx context.Context, email string)

	// Discard deletes the entry for email only if it still carries code.
	Discard(ctx context.Context, email, code string)

	// Sweep removes expired unclaimed entries and returns how many were removed.
	Sweep(ctx context.Context) int

	// Len returns the number of stored entries.
	Len() int
}
