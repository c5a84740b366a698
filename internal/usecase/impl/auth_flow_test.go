package impl

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"registrar/config"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/infra/auth"
	"registrar/internal/infra/memory"
	"registrar/internal/infra/metrics"
	"registrar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFlow struct {
	service  usecase.AuthUsecase
	cfg      *config.Config
	clock    *flowClock
	accounts *inMemoryAccounts
	notifier *capturingNotifier
	registry *prometheus.Registry
}

func newAuthFlow(t *testing.T) *authFlow {
	t.Helper()

	cfg := newTestConfig()

	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	signer, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	flow := &authFlow{
		cfg:      cfg,
		clock:    newFlowClock(),
		accounts: newInMemoryAccounts(),
		notifier: newCapturingNotifier(),
		registry: prometheus.NewRegistry(),
	}
	srv := NewAuthService(AuthServiceParams{
		Accounts: flow.accounts,
		Pending:  memory.NewPendingStoreWithClock(cfg, flow.clock.Now),
		Attempts: memory.NewAttemptTrackerWithClock(cfg, flow.clock.Now),
		Hasher:   hasher,
		Signer:   signer,
		Notifier: flow.notifier,
		Metrics:  metrics.New(flow.registry),
		Logger:   newDiscardLogger(),
	})
	srv.(*authService).now = flow.clock.Now
	flow.service = srv

	return flow
}

// confirmedAccount registers and confirms jane@example.com with password Abc123$5.
func (f *authFlow) confirmedAccount(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	registered, err := f.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5",
	})
	require.NoError(t, err)
	require.True(t, registered.Accepted)

	confirmed, err := f.service.Confirm(ctx, &usecase.ConfirmInput{
		Email: "jane@example.com",
		Code:  f.notifier.codeFor("jane@example.com"),
	})
	require.NoError(t, err)
	require.True(t, confirmed.Confirmed)
}

func TestAuthFlow_RegisterConfirmLogin(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	registered, err := flow.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Jane Doe",
		Username: "jdoe",
		Email:    "Jane@Example.com",
		Password: "Abc123$5",
	})
	require.NoError(t, err)
	require.True(t, registered.Accepted)

	code := flow.notifier.codeFor("jane@example.com")
	require.Len(t, code, 6)

	// Not confirmed yet.
	_, err = flow.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "Abc123$5"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	confirmed, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: code})
	require.NoError(t, err)
	require.True(t, confirmed.Confirmed)
	assert.Equal(t, 1, flow.accounts.count())

	// The code is single use.
	again, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: code})
	require.NoError(t, err)
	assert.ErrorIs(t, again.Reason, domainerrors.ErrPendingRegistrationNotFound)

	loggedIn, err := flow.service.Login(ctx, &usecase.LoginInput{Email: "JANE@EXAMPLE.COM", Password: "Abc123$5"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
	assert.Equal(t, "jane@example.com", loggedIn.Account.Email)
	assert.Equal(t, "Jane Doe", loggedIn.Account.FullName)
	assert.Empty(t, loggedIn.Account.PasswordHash)

	expected := `
# HELP registrar_confirm_total Confirmation requests by outcome
# TYPE registrar_confirm_total counter
registrar_confirm_total{outcome="confirmed"} 1
registrar_confirm_total{outcome="not_found"} 1
# HELP registrar_register_total Registration requests by outcome
# TYPE registrar_register_total counter
registrar_register_total{outcome="accepted"} 1
`
	require.NoError(t, testutil.GatherAndCompare(flow.registry, strings.NewReader(expected),
		"registrar_register_total", "registrar_confirm_total"))
}

func TestAuthFlow_RegisterTwiceConflicts(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5"}

	first, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	require.True(t, first.Accepted)

	input.Email = " JANE@example.com"
	second, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	assert.False(t, second.Accepted)
	assert.ErrorIs(t, second.Reason, domainerrors.ErrUserAlreadyExists)

	confirmed, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{
		Email: "jane@example.com",
		Code:  flow.notifier.codeFor("jane@example.com"),
	})
	require.NoError(t, err)
	require.True(t, confirmed.Confirmed)

	third, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	assert.ErrorIs(t, third.Reason, domainerrors.ErrUserAlreadyExists)
}

func TestAuthFlow_WeakPasswordStoresNothing(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	output, err := flow.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "abc12345",
	})
	require.NoError(t, err)
	assert.ErrorIs(t, output.Reason, domainerrors.ErrPasswordStrength)
	assert.Empty(t, flow.notifier.codeFor("jane@example.com"))

	confirmed, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: "123456"})
	require.NoError(t, err)
	assert.ErrorIs(t, confirmed.Reason, domainerrors.ErrPendingRegistrationNotFound)
}

func TestAuthFlow_DeliveryFailureFreesEmail(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5"}

	flow.notifier.err = errors.New("mailbox unavailable")
	failed, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	assert.ErrorIs(t, failed.Reason, domainerrors.ErrCodeDeliveryFailed)

	flow.notifier.err = nil
	retried, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	assert.True(t, retried.Accepted)
}

func TestAuthFlow_WrongCodeKeepsEntry(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	_, err := flow.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5",
	})
	require.NoError(t, err)
	code := flow.notifier.codeFor("jane@example.com")

	wrong := "100000"
	if code == wrong {
		wrong = "100001"
	}
	mismatch, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: wrong})
	require.NoError(t, err)
	assert.ErrorIs(t, mismatch.Reason, domainerrors.ErrConfirmationCodeMismatch)

	confirmed, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: code})
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)
}

func TestAuthFlow_Lockout(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	_, err := flow.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5",
	})
	require.NoError(t, err)
	_, err = flow.service.Confirm(ctx, &usecase.ConfirmInput{
		Email: "jane@example.com",
		Code:  flow.notifier.codeFor("jane@example.com"),
	})
	require.NoError(t, err)

	for range 4 {
		_, err := flow.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "Wrong123$"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	_, err = flow.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "Abc123$5"})
	require.ErrorIs(t, err, domainerrors.ErrAccountLocked)

	expected := `
# HELP registrar_login_total Login requests by outcome
# TYPE registrar_login_total counter
registrar_login_total{outcome="invalid_credentials"} 4
registrar_login_total{outcome="locked"} 1
`
	require.NoError(t, testutil.GatherAndCompare(flow.registry, strings.NewReader(expected), "registrar_login_total"))
}

func TestAuthFlow_ConcurrentConfirmCreatesOneAccount(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	_, err := flow.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5",
	})
	require.NoError(t, err)
	code := flow.notifier.codeFor("jane@example.com")

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			output, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: code})
			if err == nil && output.Confirmed {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, 1, flow.accounts.count())
}

func TestAuthFlow_LockExpiresAndSuccessResetsCount(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.confirmedAccount(t)

	wrong := &usecase.LoginInput{Email: "jane@example.com", Password: "Wrong123$"}
	right := &usecase.LoginInput{Email: "jane@example.com", Password: "Abc123$5"}

	for range 4 {
		_, err := flow.service.Login(ctx, wrong)
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	flow.clock.Advance(flow.cfg.Auth.LockTTL - time.Second)
	_, err := flow.service.Login(ctx, right)
	require.ErrorIs(t, err, domainerrors.ErrAccountLocked)

	flow.clock.Advance(time.Second)
	_, err = flow.service.Login(ctx, wrong)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	loggedIn, err := flow.service.Login(ctx, right)
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)

	// The success cleared the earlier failure, so three more stay below the threshold.
	for range 3 {
		_, err := flow.service.Login(ctx, wrong)
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
	_, err = flow.service.Login(ctx, right)
	require.NoError(t, err)
}

func TestAuthFlow_CancelledLoginsDoNotLock(t *testing.T) {
	flow := newAuthFlow(t)
	flow.confirmedAccount(t)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for range 4 {
		_, err := flow.service.Login(cancelled, &usecase.LoginInput{Email: "jane@example.com", Password: "Abc123$5"})
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	loggedIn, err := flow.service.Login(context.Background(), &usecase.LoginInput{Email: "jane@example.com", Password: "Abc123$5"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestAuthFlow_PendingCodeExpires(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{FullName: "Jane Doe", Username: "jdoe", Email: "jane@example.com", Password: "Abc123$5"}

	_, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	code := flow.notifier.codeFor("jane@example.com")

	flow.clock.Advance(flow.cfg.Auth.CodeTTL)
	expired, err := flow.service.Confirm(ctx, &usecase.ConfirmInput{Email: "jane@example.com", Code: code})
	require.NoError(t, err)
	assert.ErrorIs(t, expired.Reason, domainerrors.ErrConfirmationCodeExpired)

	again, err := flow.service.Register(ctx, input)
	require.NoError(t, err)
	assert.True(t, again.Accepted)
}
