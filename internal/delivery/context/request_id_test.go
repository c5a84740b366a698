package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"registrar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestClaims(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetClaims(c))

	claims := &service.Claims{Email: "jane@example.com"}
	SetClaims(c, claims)
	assert.Same(t, claims, GetClaims(c))
}
