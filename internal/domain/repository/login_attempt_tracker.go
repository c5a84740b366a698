package repository

import "context"

// LoginAttemptTracker counts failed logins per normalized email and locks the
// email once the threshold is reached. State lives for the process lifetime only.
type LoginAttemptTracker interface {
	// RegisterFailedAttempt records a failure. It is a no-op while the email is locked.
	RegisterFailedAttempt(ctx context.Context, email string)

	// IsLocked reports whether the email is locked. An elapsed lock is collapsed as a side effect.
	IsLocked(ctx context.Context, email string) bool

	// Reset forgets every failure for email.
	Reset(ctx context.Context, email string)

	// Sweep drops records whose lock has elapsed and returns how many were removed.
	Sweep(ctx context.Context) int

	// Len returns the number of tracked emails.
	Len() int
}
