// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"
	"registrar/internal/domain/service"
	"registrar/internal/infra/metrics"
	"registrar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgRegistrationAccepted = "Registration received. A confirmation code has been sent to your email."
	msgConfirmed            = "Email confirmed. You can now log in."
)

// authService implements the AuthUsecase interface.
type authService struct {
	accounts repository.AccountRepository
	pending  repository.PendingRegistrationStore
	attempts repository.LoginAttemptTracker
	hasher   service.PasswordHasher
	signer   service.TokenSigner
	notifier service.CodeNotifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	Pending  repository.PendingRegistrationStore
	Attempts repository.LoginAttemptTracker
	Hasher   service.PasswordHasher
	Signer   service.TokenSigner
	Notifier service.CodeNotifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accounts: params.Accounts,
		pending:  params.Pending,
		attempts: params.Attempts,
		hasher:   params.Hasher,
		signer:   params.Signer,
		notifier: params.Notifier,
		metrics:  params.Metrics,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the request, stores a pending registration and sends its code.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	logger := srv.log(ctx).With(slog.String("email", email))
	logger.Info("Starting registration")

	taken, err := srv.isEmailTaken(ctx, email)
	if err != nil {
		srv.metrics.RecordRegister(metrics.OutcomeError)

		return nil, err
	}
	if taken {
		return srv.rejectRegistration(logger, metrics.OutcomeConflict, domainerrors.ErrUserAlreadyExists), nil
	}

	if len(input.Password) > service.MaxPasswordBytes {
		return srv.rejectRegistration(logger, metrics.OutcomePasswordTooLong, domainerrors.ErrPasswordTooLong), nil
	}
	if srv.hasher.ClassifyStrength(input.Password) == service.PasswordWeak {
		return srv.rejectRegistration(logger, metrics.OutcomeWeakPassword, domainerrors.ErrPasswordStrength), nil
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.metrics.RecordRegister(metrics.OutcomeError)
		logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	reg, err := srv.pending.Create(ctx, &entity.PendingRegistration{
		Email:        email,
		FullName:     input.FullName,
		Username:     input.Username,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrPendingExists) {
		return srv.rejectRegistration(logger, metrics.OutcomeConflict, domainerrors.ErrUserAlreadyExists), nil
	}
	if err != nil {
		srv.metrics.RecordRegister(metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to store pending registration")
	}

	if err := srv.notifier.SendCode(ctx, email, reg.Code); err != nil {
		// Without the code the entry could never be confirmed, so free the email for a retry.
		srv.pending.Discard(ctx, email, reg.Code)
		logger.Error("Failed to deliver confirmation code", slog.Any("error", err))

		return srv.rejectRegistration(logger, metrics.OutcomeDeliveryFailed, domainerrors.ErrCodeDeliveryFailed), nil
	}

	srv.metrics.RecordRegister(metrics.OutcomeAccepted)
	logger.Info("Registration pending confirmation", slog.Time("expires_at", reg.ExpiresAt))

	return &usecase.RegisterOutput{Accepted: true, Message: msgRegistrationAccepted}, nil
}

// isEmailTaken reports whether the email has a live pending registration or a confirmed account.
func (srv *authService) isEmailTaken(ctx context.Context, email string) (bool, error) {
	if reg, ok := srv.pending.Get(ctx, email); ok && !reg.IsExpired(srv.now()) {
		return true, nil
	}

	_, err := srv.accounts.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrAccountNotFound) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to look up account")
}

func (srv *authService) rejectRegistration(logger *slog.Logger, outcome string, reason domainerrors.AppError) *usecase.RegisterOutput {
	srv.metrics.RecordRegister(outcome)
	logger.Info("Registration rejected", slog.String("reason", reason.ErrorCode()))

	return &usecase.RegisterOutput{Message: reason.Message(), Reason: reason}
}

// Confirm checks the code and, on a match, persists the account before the pending entry is dropped.
func (srv *authService) Confirm(ctx context.Context, input *usecase.ConfirmInput) (*usecase.ConfirmOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	logger := srv.log(ctx).With(slog.String("email", email))

	reg, err := srv.pending.Confirm(ctx, email, input.Code)
	switch {
	case errors.Is(err, repository.ErrPendingNotFound):
		return srv.rejectConfirmation(logger, metrics.OutcomeNotFound, domainerrors.ErrPendingRegistrationNotFound), nil
	case errors.Is(err, repository.ErrPendingExpired):
		return srv.rejectConfirmation(logger, metrics.OutcomeExpired, domainerrors.ErrConfirmationCodeExpired), nil
	case errors.Is(err, repository.ErrPendingMismatch):
		return srv.rejectConfirmation(logger, metrics.OutcomeMismatch, domainerrors.ErrConfirmationCodeMismatch), nil
	case errors.Is(err, repository.ErrPendingInProgress):
		return srv.rejectConfirmation(logger, metrics.OutcomeInProgress, domainerrors.ErrConfirmationInProgress), nil
	case err != nil:
		srv.metrics.RecordConfirm(metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to confirm pending registration")
	}

	account := reg.ToAccount()
	if err := srv.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			// Another account owns the email now; this registration can never succeed.
			srv.pending.Complete(ctx, email)

			return srv.rejectConfirmation(logger, metrics.OutcomeConflict, domainerrors.ErrUserAlreadyExists), nil
		}

		// Keep the entry confirmable so the same code can be retried.
		srv.pending.Release(ctx, email)
		logger.Error("Failed to persist confirmed account", slog.Any("error", err))

		return srv.rejectConfirmation(logger, metrics.OutcomePersistenceFailed, domainerrors.ErrPersistenceFailed), nil
	}
	srv.pending.Complete(ctx, email)

	srv.metrics.RecordConfirm(metrics.OutcomeConfirmed)
	logger.Info("Account confirmed", slog.String("account_id", account.ID.String()))

	return &usecase.ConfirmOutput{Confirmed: true, Message: msgConfirmed}, nil
}

func (srv *authService) rejectConfirmation(logger *slog.Logger, outcome string, reason domainerrors.AppError) *usecase.ConfirmOutput {
	srv.metrics.RecordConfirm(outcome)
	logger.Info("Confirmation rejected", slog.String("reason", reason.ErrorCode()))

	return &usecase.ConfirmOutput{Message: reason.Message(), Reason: reason}
}

// Login verifies credentials unless the email is locked out.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	logger := srv.log(ctx).With(slog.String("email", email))

	if srv.attempts.IsLocked(ctx, email) {
		srv.metrics.RecordLogin(metrics.OutcomeLocked)
		logger.Warn("Login rejected, account locked")

		return nil, errors.Wrap(domainerrors.ErrAccountLocked, "login failed")
	}

	account, err := srv.accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		srv.metrics.RecordLogin(metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to look up account")
	}

	hash := ""
	if account != nil {
		hash = account.PasswordHash
	}
	// An unknown email still pays for one bcrypt comparison.
	matched, err := srv.hasher.Check(ctx, input.Password, hash)
	if err != nil {
		srv.metrics.RecordLogin(metrics.OutcomeError)
		logger.Warn("Login aborted before password check", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !matched || account == nil {
		srv.attempts.RegisterFailedAttempt(ctx, email)
		srv.metrics.RecordLogin(metrics.OutcomeInvalidCredentials)
		logger.Info("Login failed, invalid credentials")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.attempts.Reset(ctx, email)

	token, err := srv.signer.Sign(account.ID, account.Email)
	if err != nil {
		srv.metrics.RecordLogin(metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.metrics.RecordLogin(metrics.OutcomeAuthenticated)
	logger.Info("User logged in", slog.String("account_id", account.ID.String()))

	return &usecase.LoginOutput{
		Account:     account.Public(),
		AccessToken: token,
	}, nil
}
