package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"registrar/config"
	"registrar/internal/domain/lifecycle"
	"registrar/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// New opens the PostgreSQL connection pool that backs the account repository.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Writes are single INSERTs.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil {
		params.Registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, dbStatsName(params.Config)))
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool logs whenever requests had to wait for a pooled connection.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
}

func dbStatsName(cfg *config.Config) string {
	if cfg.Env.ServiceName != "" {
		return cfg.Env.ServiceName
	}

	return "registrar"
}
