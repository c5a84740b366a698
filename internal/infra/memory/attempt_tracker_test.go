package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"registrar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptTracker_LocksAfterMaxAttempts(t *testing.T) {
	clock := newFakeClock()
	tracker := newAttemptTracker(4, 40*time.Minute, clock.Now)
	ctx := context.Background()

	for range 3 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
		assert.False(t, tracker.IsLocked(ctx, "jane@example.com"))
	}

	tracker.RegisterFailedAttempt(ctx, "JANE@example.com")
	assert.True(t, tracker.IsLocked(ctx, "jane@example.com"))

	record := tracker.records.shardFor("jane@example.com").items["jane@example.com"]
	require.NotNil(t, record)
	assert.Equal(t, 0, record.Failures)
	assert.Equal(t, clock.Now().Add(40*time.Minute), record.LockedUntil)
}

func TestAttemptTracker_FailuresDuringLockAreIgnored(t *testing.T) {
	clock := newFakeClock()
	tracker := newAttemptTracker(4, 40*time.Minute, clock.Now)
	ctx := context.Background()

	for range 4 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	}
	lockedAt := clock.Now()

	clock.Advance(10 * time.Minute)
	for range 10 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	}

	record := tracker.records.shardFor("jane@example.com").items["jane@example.com"]
	assert.Equal(t, lockedAt.Add(40*time.Minute), record.LockedUntil)
	assert.Equal(t, 0, record.Failures)
}

func TestAttemptTracker_LockElapses(t *testing.T) {
	clock := newFakeClock()
	tracker := newAttemptTracker(4, 40*time.Minute, clock.Now)
	ctx := context.Background()

	for range 4 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	}

	clock.Advance(40*time.Minute - time.Millisecond)
	assert.True(t, tracker.IsLocked(ctx, "jane@example.com"))

	clock.Advance(time.Millisecond)
	assert.False(t, tracker.IsLocked(ctx, "jane@example.com"))

	record := tracker.records.shardFor("jane@example.com").items["jane@example.com"]
	assert.True(t, record.LockedUntil.IsZero())
	assert.Equal(t, 0, record.Failures)

	// A fresh cycle needs the full threshold again.
	for range 3 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	}
	assert.False(t, tracker.IsLocked(ctx, "jane@example.com"))
}

func TestAttemptTracker_Reset(t *testing.T) {
	tracker := newAttemptTracker(4, 40*time.Minute, time.Now)
	ctx := context.Background()

	for range 3 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	}
	tracker.Reset(ctx, "Jane@Example.com")
	assert.Equal(t, 0, tracker.Len())

	tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	assert.False(t, tracker.IsLocked(ctx, "jane@example.com"))
}

func TestAttemptTracker_IdentitiesAreIndependent(t *testing.T) {
	tracker := newAttemptTracker(4, 40*time.Minute, time.Now)
	ctx := context.Background()

	for range 4 {
		tracker.RegisterFailedAttempt(ctx, "jane@example.com")
	}

	assert.True(t, tracker.IsLocked(ctx, "jane@example.com"))
	assert.False(t, tracker.IsLocked(ctx, "john@example.com"))
}

func TestAttemptTracker_ConcurrentFailuresAreNotLost(t *testing.T) {
	clock := newFakeClock()
	tracker := newAttemptTracker(1000, 40*time.Minute, clock.Now)
	ctx := context.Background()

	const workers = 100
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RegisterFailedAttempt(ctx, "jane@example.com")
		}()
	}
	wg.Wait()

	record := tracker.records.shardFor("jane@example.com").items["jane@example.com"]
	assert.Equal(t, workers, record.Failures)
}

func TestAttemptTracker_ConcurrentFailuresLockExactlyOnce(t *testing.T) {
	clock := newFakeClock()
	tracker := newAttemptTracker(4, 40*time.Minute, clock.Now)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RegisterFailedAttempt(ctx, "jane@example.com")
		}()
	}
	wg.Wait()

	assert.True(t, tracker.IsLocked(ctx, "jane@example.com"))
	record := tracker.records.shardFor("jane@example.com").items["jane@example.com"]
	assert.Equal(t, 0, record.Failures)
}

func TestAttemptTracker_Sweep(t *testing.T) {
	clock := newFakeClock()
	tracker := newAttemptTracker(4, 40*time.Minute, clock.Now)
	ctx := context.Background()

	for range 4 {
		tracker.RegisterFailedAttempt(ctx, "locked@example.com")
	}
	tracker.RegisterFailedAttempt(ctx, "counting@example.com")

	assert.Equal(t, 0, tracker.Sweep(ctx))

	clock.Advance(41 * time.Minute)
	assert.Equal(t, 1, tracker.Sweep(ctx))
	assert.Equal(t, 1, tracker.Len())

	// A sub-threshold count survives any number of sweeps.
	clock.Advance(24 * time.Hour)
	assert.Equal(t, 0, tracker.Sweep(ctx))
	record := tracker.records.shardFor("counting@example.com").items["counting@example.com"]
	require.NotNil(t, record)
	assert.Equal(t, 1, record.Failures)
}

func TestNewAttemptTracker_Config(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{MaxLoginAttempts: 3, LockTTL: time.Minute}}
	tracker := NewAttemptTracker(cfg).(*AttemptTracker)
	assert.Equal(t, 3, tracker.maxAttempts)
	assert.Equal(t, time.Minute, tracker.lockTTL)

	defaults := NewAttemptTracker(&config.Config{}).(*AttemptTracker)
	assert.Equal(t, config.DefaultMaxLoginAttempts, defaults.maxAttempts)
	assert.Equal(t, config.DefaultLockTTL, defaults.lockTTL)
}
