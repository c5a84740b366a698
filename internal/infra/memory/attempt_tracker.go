package memory

import (
	"context"
	"time"

	"registrar/config"
	"registrar/internal/domain/entity"
	"registrar/internal/domain/repository"
)

// AttemptTracker is the in-memory LoginAttemptTracker.
type AttemptTracker struct {
	records     *shardedMap[*entity.LoginAttempt]
	maxAttempts int
	lockTTL     time.Duration
	now         func() time.Time
}

// NewAttemptTracker locks an email for auth.lockTTL after auth.maxLoginAttempts failures.
func NewAttemptTracker(cfg *config.Config) repository.LoginAttemptTracker {
	return NewAttemptTrackerWithClock(cfg, time.Now)
}

// NewAttemptTrackerWithClock builds the tracker with an explicit time source.
func NewAttemptTrackerWithClock(cfg *config.Config, now func() time.Time) repository.LoginAttemptTracker {
	maxAttempts, lockTTL := config.DefaultMaxLoginAttempts, config.DefaultLockTTL
	if cfg.Auth != nil {
		if cfg.Auth.MaxLoginAttempts > 0 {
			maxAttempts = cfg.Auth.MaxLoginAttempts
		}
		if cfg.Auth.LockTTL > 0 {
			lockTTL = cfg.Auth.LockTTL
		}
	}

	return newAttemptTracker(maxAttempts, lockTTL, now)
}

func newAttemptTracker(maxAttempts int, lockTTL time.Duration, now func() time.Time) *AttemptTracker {
	return &AttemptTracker{
		records:     newShardedMap[*entity.LoginAttempt](DefaultShardCount),
		maxAttempts: maxAttempts,
		lockTTL:     lockTTL,
		now:         now,
	}
}

func (t *AttemptTracker) RegisterFailedAttempt(_ context.Context, email string) {
	key := entity.NormalizeEmail(email)
	t.records.update(key, func(items map[string]*entity.LoginAttempt) {
		now := t.now()
		record, ok := items[key]
		if !ok {
			record = &entity.LoginAttempt{Email: key}
			items[key] = record
		}
		if record.IsLocked(now) {
			return
		}

		record.LockedUntil = time.Time{}
		record.Failures++
		if record.Failures >= t.maxAttempts {
			record.Failures = 0
			record.LockedUntil = now.Add(t.lockTTL)
		}
	})
}

func (t *AttemptTracker) IsLocked(_ context.Context, email string) bool {
	key := entity.NormalizeEmail(email)

	locked := false
	t.records.update(key, func(items map[string]*entity.LoginAttempt) {
		record, ok := items[key]
		if !ok {
			return
		}
		if record.IsLocked(t.now()) {
			locked = true

			return
		}
		if !record.LockedUntil.IsZero() {
			record.LockedUntil = time.Time{}
			record.Failures = 0
		}
	})

	return locked
}

func (t *AttemptTracker) Reset(_ context.Context, email string) {
	key := entity.NormalizeEmail(email)
	t.records.update(key, func(items map[string]*entity.LoginAttempt) {
		delete(items, key)
	})
}

// Sweep drops records whose lock has elapsed. Unlocked records keep their
// failure count, since counts do not decay with time.
func (t *AttemptTracker) Sweep(_ context.Context) int {
	now := t.now()
	removed := 0
	t.records.each(func(items map[string]*entity.LoginAttempt) {
		for key, record := range items {
			if !record.LockedUntil.IsZero() && !record.IsLocked(now) {
				delete(items, key)
				removed++
			}
		}
	})

	return removed
}

func (t *AttemptTracker) Len() int {
	return t.records.len()
}
