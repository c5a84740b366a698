// Package api is the HTTP transport for registration, confirmation and login.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"registrar/config"
	"registrar/internal/delivery"
	apimiddleware "registrar/internal/delivery/api/middleware"
	"registrar/internal/delivery/api/router"
	"registrar/internal/delivery/api/validator"
	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/delivery/middleware"
	"registrar/internal/domain/lifecycle"
	"registrar/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the configured echo instance with every route registered.
func newEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover, request id, logger, cors, body limit.
	echoServer.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig(params.Cfg)))

	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

// corsConfig allows credentialed requests from the configured front-end origins.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	corsCfg := echomiddleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders:    []string{deliverycontext.HeaderXRequestID},
		AllowCredentials: len(cfg.HTTP.CORSOrigins) > 0,
	}
	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSOrigins
	}

	return corsCfg
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
