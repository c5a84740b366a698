package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"registrar/config"
	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/service"
	"registrar/internal/errors"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const codeSubject = "Your confirmation code"

// codeNotifier turns a code into an event and publishes it with retries.
type codeNotifier struct {
	publisher  eventPublisher
	maxRetries uint64
	baseDelay  time.Duration
	codeTTL    time.Duration
	logger     *slog.Logger
}

// NotifierParams holds dependencies for CodeNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCodeNotifier creates a CodeNotifier for the configured provider
func NewCodeNotifier(params NotifierParams) (service.CodeNotifier, error) {
	cfg := params.Config.Notifier
	if cfg == nil {
		cfg = &config.NotifierConfig{Provider: config.NotifierProviderLog}
	}
	logger := params.Logger

	publisher, err := newPublisher(params.Ctx, cfg, params.Config.IsProduction(), logger)
	if err != nil {
		return nil, err
	}

	codeTTL := config.DefaultCodeTTL
	if params.Config.Auth != nil && params.Config.Auth.CodeTTL > 0 {
		codeTTL = params.Config.Auth.CodeTTL
	}

	notifier := &codeNotifier{
		publisher:  publisher,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.RetryBaseDelay,
		codeTTL:    codeTTL,
		logger:     logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing CodeNotifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

func newPublisher(ctx context.Context, cfg *config.NotifierConfig, production bool, logger *slog.Logger) (eventPublisher, error) {
	switch cfg.Provider {
	case "", config.NotifierProviderLog:
		if production {
			return nil, errors.New("log provider is not allowed in production")
		}
		logger.Warn("Confirmation codes are only logged, no email will be sent")

		return newLogPublisher(logger), nil

	case config.NotifierProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP notifier", slog.String("endpoint", cfg.LocalEndpoint))

		return newLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case config.NotifierProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return newGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}
}

// SendCode publishes the code, retrying transient failures with exponential backoff.
func (n *codeNotifier) SendCode(ctx context.Context, email, code string) error {
	event := &service.ConfirmationCodeEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Email:     email,
		Code:      code,
		Subject:   codeSubject,
		Body: fmt.Sprintf("Your confirmation code is %s. It expires in %s.",
			code, n.codeTTL.Round(time.Second)),
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	backoff := retry.WithMaxRetries(n.maxRetries, retry.NewExponential(n.baseDelay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := n.publisher.Publish(ctx, event); err != nil {
			if errors.Is(err, ErrRejected) {
				return err
			}
			logger.Warn("Confirmation code delivery failed",
				slog.String("email", email),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "deliver confirmation code after %d attempt(s)", attempt)
	}

	return nil
}

func (n *codeNotifier) Close() error {
	return n.publisher.Close()
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCodeNotifier),
)
