// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"strings"

	"registrar/config"
	"registrar/internal/domain/service"
	"registrar/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const (
	// SpecialChars is the symbol set a strong password must draw from.
	SpecialChars = "@$!%*?&"

	strongMinLength = 8
	mediumMinLength = 6
)

// bcryptHasher implements service.PasswordHasher with bcrypt. Hashing runs on a
// bounded number of slots so bursts of registrations or logins cannot starve the
// rest of the process.
type bcryptHasher struct {
	cost      int
	slots     *semaphore.Weighted
	dummyHash []byte
}

// NewBcryptHasher builds the hasher from the auth configuration.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost, workers := config.DefaultBcryptCost, 1
	if cfg != nil && cfg.Auth != nil {
		cost, workers = cfg.Auth.BcryptCost, cfg.Auth.HashWorkers
	}

	return NewBcryptHasherWithCost(cost, workers)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and worker count.
func NewBcryptHasherWithCost(cost, workers int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if workers <= 0 {
		workers = 1
	}

	// Compared against when no account exists, so a miss costs one full bcrypt round.
	filler := make([]byte, 32)
	if _, err := rand.Read(filler); err != nil {
		return nil, errors.Wrap(err, "failed to read random filler")
	}
	dummy, err := bcrypt.GenerateFromPassword(filler, cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dummy hash")
	}

	return &bcryptHasher{
		cost:      cost,
		slots:     semaphore.NewWeighted(int64(workers)),
		dummyHash: dummy,
	}, nil
}

// ClassifyStrength grades a password. Strong needs 8+ characters with a lowercase
// letter, an uppercase letter, a digit and a symbol from SpecialChars. Medium needs
// 6+ characters with a lowercase letter, an uppercase letter and a digit, and no
// symbols at all. Any character outside those sets makes the password weak.
func (h *bcryptHasher) ClassifyStrength(password string) service.PasswordStrength {
	var lower, upper, digit, special, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(SpecialChars, r):
			special = true
		default:
			other = true
		}
	}

	length := len(password)
	if other || !lower || !upper || !digit {
		return service.PasswordWeak
	}
	if special {
		if length >= strongMinLength {
			return service.PasswordStrong
		}

		return service.PasswordWeak
	}
	if length >= mediumMinLength {
		return service.PasswordMedium
	}

	return service.PasswordWeak
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a fresh salt on every call.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hashing slot")
	}
	defer h.slots.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "waiting for hashing slot")
	}
	defer h.slots.Release(1)

	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))

		return false, nil
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

