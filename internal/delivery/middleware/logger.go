package middleware

import (
	"log/slog"
	"time"

	"registrar/config"
	deliverycontext "registrar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request through the request-scoped logger.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware. Probe and scrape endpoints
// are only logged in debug mode.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		skipPaths: map[string]struct{}{
			"/health":  {},
			"/metrics": {},
		},
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, skip := m.skipPaths[c.Request().URL.Path]; skip && !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
