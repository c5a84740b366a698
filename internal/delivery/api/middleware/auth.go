// Package middleware holds the echo middleware specific to the API server.
package middleware

import (
	"log/slog"

	deliverycontext "registrar/internal/delivery/context"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessTokenCookie is the cookie that carries the access token issued at login.
const AccessTokenCookie = "access_token"

// AuthMiddleware authenticates requests from the access_token cookie.
type AuthMiddleware struct {
	signer service.TokenSigner
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(signer service.TokenSigner, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{signer: signer, logger: logger}
}

// Authenticate rejects the request with 401 unless the cookie holds a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(AccessTokenCookie)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "access token cookie missing")
		}

		claims, err := m.signer.Validate(cookie.Value)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrUnauthorized, "invalid access token")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}
