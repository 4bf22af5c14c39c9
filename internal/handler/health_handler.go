package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger *slog.Logger
}

func NewHealthHandler(ping func(ctx context.Context) error, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, logger: logger}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.check)
}

// DBに届くかだけ見る
func (h *HealthHandler) check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", "error", err)
		return fail(c, http.StatusServiceUnavailable, "Database unavailable")
	}
	return success(c, http.StatusOK, "OK", nil)
}
