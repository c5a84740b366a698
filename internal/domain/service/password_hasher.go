// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// MaxPasswordBytes is the longest password the hashing scheme accepts.
const MaxPasswordBytes = 72

// PasswordStrength is the classification of a candidate password.
type PasswordStrength int

const (
	PasswordWeak PasswordStrength = iota
	PasswordMedium
	PasswordStrong
)

// String returns the lowercase name of the strength class.
func (s PasswordStrength) String() string {
	switch s {
	case PasswordStrong:
		return "strong"
	case PasswordMedium:
		return "medium"
	default:
		return "weak"
	}
}

// PasswordHasher is the credential policy: strength classification plus
// salted adaptive hashing. Hash and Check are CPU-bound and may block until a
// hashing slot is free; both honour ctx while waiting.
type PasswordHasher interface {
	// ClassifyStrength grades a plaintext password.
	ClassifyStrength(password string) PasswordStrength

	// Hash generates a salted hash from a plaintext password.
	Hash(ctx context.Context, password string) (string, error)

	// Check compares a plaintext password with a hash. An empty hash is compared
	// against a fixed dummy hash so the cost matches a real comparison. The error
	// is set only when ctx ends before the comparison could run.
	Check(ctx context.Context, password, hash string) (bool, error)
}
