package entity

import "time"

// LoginAttempt tracks consecutive failed logins for one identity.
// While LockedUntil is set and in the future the failure count is ignored.
type LoginAttempt struct {
	Email       string    // Normalized identity.
	Failures    int       // Consecutive failures since the last reset or lock.
	LockedUntil time.Time // Zero when unlocked.
}

// IsLocked reports whether the lock is still in effect at now.
func (a *LoginAttempt) IsLocked(now time.Time) bool {
	return !a.LockedUntil.IsZero() && a.LockedUntil.After(now)
}
