// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"registrar/config"
	apimiddleware "registrar/internal/delivery/api/middleware"
	"registrar/internal/delivery/api/response"
	deliverycontext "registrar/internal/delivery/context"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the body of POST /user/register.
// Limits match the accounts table columns and the bcrypt input limit.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=255,email"`
	Password string `json:"password" validate:"required,max=72"`
	Username string `json:"username" validate:"required,max=100"`
}

// ConfirmRequest is the body of POST /user/confirm.
type ConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse acknowledges an accepted registration.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRejectedResponse is returned with 200 for any business rejection at registration.
type RegisterRejectedResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// ConfirmResponse is the body returned by POST /user/confirm.
type ConfirmResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// AccountResponse is the identity shown on the dashboard.
type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthHandler holds dependencies for registration, confirmation and login.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// bind decodes and validates the body. Decode failures become 400 here; validation
// failures are returned for the error handler.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Accepted {
		return c.JSON(http.StatusOK, RegisterRejectedResponse{Message: output.Message})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: output.Message})
}

// Confirm handles the confirmation code submission.
func (h *AuthHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Confirm(c.Request().Context(), &usecase.ConfirmInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ConfirmResponse{Message: output.Message, Success: output.Confirmed})
}

// Login sets the access token cookie and redirects to the dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.AccessTokenCookie,
		Value:    output.AccessToken,
		Path:     "/",
		MaxAge:   int(h.cfg.Auth.AccessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction() || h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	return c.Redirect(http.StatusFound, h.cfg.HTTP.DashboardPath)
}

// Dashboard returns the identity of the logged-in account.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, AccountResponse{
		ID:    claims.Subject,
		Email: claims.Email,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
