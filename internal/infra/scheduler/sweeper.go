// Package scheduler runs the periodic purge of the in-memory stores.
package scheduler

import (
	"context"
	"log/slog"

	"registrar/config"
	"registrar/internal/domain/repository"
	"registrar/internal/errors"
	"registrar/internal/infra/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Sweeper removes expired pending registrations and elapsed lockouts on a cron schedule.
// Expiry is enforced on read, so the sweep only bounds memory.
type Sweeper struct {
	cron     *cron.Cron
	schedule string
	pending  repository.PendingRegistrationStore
	attempts repository.LoginAttemptTracker
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// SweeperParams holds dependencies for Sweeper, injected by Fx
type SweeperParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Pending  repository.PendingRegistrationStore
	Attempts repository.LoginAttemptTracker
	Metrics  *metrics.Metrics
}

// NewSweeper creates the sweeper and ties it to the application lifecycle.
func NewSweeper(params SweeperParams) (*Sweeper, error) {
	schedule := ""
	if params.Config.Auth != nil {
		schedule = params.Config.Auth.SweepSchedule
	}

	sweeper, err := newSweeper(schedule, params.Pending, params.Attempts, params.Metrics, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sweeper.Start()

			return nil
		},
		OnStop: sweeper.Stop,
	})

	return sweeper, nil
}

func newSweeper(
	schedule string,
	pending repository.PendingRegistrationStore,
	attempts repository.LoginAttemptTracker,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*Sweeper, error) {
	s := &Sweeper{
		schedule: schedule,
		pending:  pending,
		attempts: attempts,
		metrics:  m,
		logger:   logger,
	}
	if schedule == "" {
		return s, nil
	}

	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))
	s.cron = cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", schedule)
	}

	return s, nil
}

// Start begins the schedule. It is a no-op when sweeping is disabled.
func (s *Sweeper) Start() {
	if s.cron == nil {
		s.logger.Info("In-memory sweep disabled")

		return
	}

	s.logger.Info("Starting in-memory sweep", slog.String("schedule", s.schedule))
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cron == nil {
		return nil
	}

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "sweeper did not stop in time")
	}
}

// RunOnce sweeps both stores and returns how many entries each lost.
func (s *Sweeper) RunOnce(ctx context.Context) (pending, attempts int) {
	pending = s.pending.Sweep(ctx)
	attempts = s.attempts.Sweep(ctx)

	s.metrics.RecordSwept(metrics.StorePending, pending)
	s.metrics.RecordSwept(metrics.StoreAttempts, attempts)

	if pending > 0 || attempts > 0 {
		s.logger.Debug("Swept in-memory stores",
			slog.Int("pending_registrations", pending),
			slog.Int("login_attempts", attempts),
		)
	}

	return pending, attempts
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSweeper),
	fx.Invoke(func(*Sweeper) {}),
)
