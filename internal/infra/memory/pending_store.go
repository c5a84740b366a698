package memory

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"time"

	"registrar/config"
	"registrar/internal/domain/entity"
	"registrar/internal/domain/repository"
	"registrar/internal/errors"
)

const (
	codeMin   = 100000
	codeRange = 900000
)

type pendingEntry struct {
	reg     entity.PendingRegistration
	claimed bool
}

// PendingStore is the in-memory PendingRegistrationStore.
type PendingStore struct {
	entries *shardedMap[*pendingEntry]
	ttl     time.Duration
	now     func() time.Time
	newCode func() (string, error)
}

// NewPendingStore builds a store whose codes live for auth.codeTTL.
func NewPendingStore(cfg *config.Config) repository.PendingRegistrationStore {
	return NewPendingStoreWithClock(cfg, time.Now)
}

// NewPendingStoreWithClock builds the store with an explicit time source.
func NewPendingStoreWithClock(cfg *config.Config, now func() time.Time) repository.PendingRegistrationStore {
	ttl := config.DefaultCodeTTL
	if cfg.Auth != nil && cfg.Auth.CodeTTL > 0 {
		ttl = cfg.Auth.CodeTTL
	}

	return newPendingStore(ttl, now)
}

func newPendingStore(ttl time.Duration, now func() time.Time) *PendingStore {
	return &PendingStore{
		entries: newShardedMap[*pendingEntry](DefaultShardCount),
		ttl:     ttl,
		now:     now,
		newCode: generateCode,
	}
}

// generateCode returns a uniformly distributed six digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return "", errors.Wrap(err, "generate confirmation code")
	}

	return big.NewInt(0).Add(n, big.NewInt(codeMin)).String(), nil
}

func (s *PendingStore) Create(_ context.Context, reg *entity.PendingRegistration) (*entity.PendingRegistration, error) {
	code, err := s.newCode()
	if err != nil {
		return nil, err
	}

	entry := &pendingEntry{reg: *reg}
	entry.reg.Email = entity.NormalizeEmail(reg.Email)
	entry.reg.Code = code

	var created *entity.PendingRegistration
	s.entries.update(entry.reg.Email, func(items map[string]*pendingEntry) {
		now := s.now()
		if existing, ok := items[entry.reg.Email]; ok && (existing.claimed || !existing.reg.IsExpired(now)) {
			err = repository.ErrPendingExists

			return
		}

		entry.reg.CreatedAt = now
		entry.reg.ExpiresAt = now.Add(s.ttl)
		items[entry.reg.Email] = entry

		cp := entry.reg
		created = &cp
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *PendingStore) Get(_ context.Context, email string) (*entity.PendingRegistration, bool) {
	key := entity.NormalizeEmail(email)

	var found *entity.PendingRegistration
	s.entries.update(key, func(items map[string]*pendingEntry) {
		if entry, ok := items[key]; ok {
			cp := entry.reg
			found = &cp
		}
	})

	return found, found != nil
}

func (s *PendingStore) Confirm(_ context.Context, email, code string) (*entity.PendingRegistration, error) {
	key := entity.NormalizeEmail(email)

	var (
		confirmed *entity.PendingRegistration
		err       error
	)
	s.entries.update(key, func(items map[string]*pendingEntry) {
		entry, ok := items[key]
		switch {
		case !ok:
			err = repository.ErrPendingNotFound
		case entry.claimed:
			err = repository.ErrPendingInProgress
		case entry.reg.IsExpired(s.now()):
			delete(items, key)
			err = repository.ErrPendingExpired
		case subtle.ConstantTimeCompare([]byte(entry.reg.Code), []byte(code)) != 1:
			err = repository.ErrPendingMismatch
		default:
			entry.claimed = true
			cp := entry.reg
			confirmed = &cp
		}
	})
	if err != nil {
		return nil, err
	}

	return confirmed, nil
}

func (s *PendingStore) Complete(_ context.Context, email string) {
	key := entity.NormalizeEmail(email)
	s.entries.update(key, func(items map[string]*pendingEntry) {
		if entry, ok := items[key]; ok && entry.claimed {
			delete(items, key)
		}
	})
}

func (s *PendingStore) Release(_ context.Context, email string) {
	key := entity.NormalizeEmail(email)
	s.entries.update(key, func(items map[string]*pendingEntry) {
		if entry, ok := items[key]; ok {
			entry.claimed = false
		}
	})
}

func (s *PendingStore) Discard(_ context.Context, email, code string) {
	key := entity.NormalizeEmail(email)
	s.entries.update(key, func(items map[string]*pendingEntry) {
		if entry, ok := items[key]; ok && !entry.claimed && entry.reg.Code == code {
			delete(items, key)
		}
	})
}

func (s *PendingStore) Sweep(_ context.Context) int {
	now := s.now()
	removed := 0
	s.entries.each(func(items map[string]*pendingEntry) {
		for key, entry := range items {
			if !entry.claimed && entry.reg.IsExpired(now) {
				delete(items, key)
				removed++
			}
		}
	})

	return removed
}

func (s *PendingStore) Len() int {
	return s.entries.len()
}
