package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"registrar/config"
	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			HashWorkers: 2,
		},
	}
	cfg.Env.ServiceName = "registrar-test"
	cfg.SecretKey.Access = "test-access-secret"
	cfg.ApplyDefaults()

	return cfg
}

// inMemoryAccounts is a map-backed AccountRepository with the same idempotency
// rules as the postgres implementation.
type inMemoryAccounts struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
}

func newInMemoryAccounts() *inMemoryAccounts {
	return &inMemoryAccounts{accounts: make(map[string]*entity.Account)}
}

func (r *inMemoryAccounts) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	cp := *account

	return &cp, nil
}

func (r *inMemoryAccounts) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.accounts[account.Email]; ok {
		if existing.PasswordHash != account.PasswordHash {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		*account = *existing

		return nil
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	cp := *account
	r.accounts[account.Email] = &cp

	return nil
}

func (r *inMemoryAccounts) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.accounts)
}

// capturingNotifier records the last code sent per email.
type capturingNotifier struct {
	mu    sync.Mutex
	codes map[string]string
	err   error
}

func newCapturingNotifier() *capturingNotifier {
	return &capturingNotifier{codes: make(map[string]string)}
}

func (n *capturingNotifier) SendCode(_ context.Context, email, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.codes[email] = code

	return nil
}

func (n *capturingNotifier) Close() error { return nil }

func (n *capturingNotifier) codeFor(email string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.codes[email]
}

type flowClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFlowClock() *flowClock {
	return &flowClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *flowClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *flowClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
