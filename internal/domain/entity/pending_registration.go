package entity

import "time"

// PendingRegistration is an unconfirmed account waiting for its one-time code.
type PendingRegistration struct {
	Email        string    // Normalized identity; the store key.
	FullName     string    // Display name to copy onto the account.
	Username     string    // Handle to copy onto the account.
	PasswordHash string    // Hash computed at registration time.
	Code         string    // Six ASCII digits, 100000-999999.
	CreatedAt    time.Time // When the registration was accepted.
	ExpiresAt    time.Time // CreatedAt + code TTL.
}

// IsExpired reports whether the code can no longer be used at now.
// A registration is expired at exactly ExpiresAt.
func (p *PendingRegistration) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// ToAccount builds the account that a successful confirmation persists.
func (p *PendingRegistration) ToAccount() *Account {
	return &Account{
		Email:        p.Email,
		FullName:     p.FullName,
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
	}
}
