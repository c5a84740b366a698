// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"registrar/config"
	"registrar/internal/delivery/api/middleware"
	"registrar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})))

	userGroup := e.Group("/user")
	{
		userGroup.POST("/register", r.authHandler.Register)
		userGroup.POST("/confirm", r.authHandler.Confirm)
		userGroup.POST("/login", r.authHandler.Login)
	}

	e.GET(r.config.HTTP.DashboardPath, r.authHandler.Dashboard, r.authMiddleware.Authenticate)
}
