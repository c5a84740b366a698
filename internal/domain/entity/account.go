// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a confirmed registration. It is created once from a PendingRegistration
// and never updated in place by the auth core.
type Account struct {
	ID           uuid.UUID // Record identifier assigned by the repository, independent of the email.
	Email        string    // Normalized email, the login identity.
	FullName     string    // Display name given at registration.
	Username     string    // Handle chosen at registration.
	PasswordHash string    // bcrypt hash; stripped before an account leaves the usecase layer.
	CreatedAt    time.Time // Timestamp of the confirmation that created the account.
}

// Public returns a copy of the account without the password hash.
func (a *Account) Public() *Account {
	if a == nil {
		return nil
	}

	cp := *a
	cp.PasswordHash = ""

	return &cp
}
