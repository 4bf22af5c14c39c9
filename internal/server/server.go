package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"productapi/internal/handler"
	"productapi/internal/middleware"

	"github.com/labstack/echo/v4"
)

const readHeaderTimeout = 10 * time.Second

// New はミドルウェアとルートを登録したechoを返す
func New(logger *slog.Logger, handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Server.ReadHeaderTimeout = readHeaderTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Recover(logger))

	RegisterRoutes(e, handlers...)
	return e
}

// Start はShutdownされるまでブロックする。Shutdownによる終了はnilを返す
func Start(e *echo.Echo, addr string) error {
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context, e *echo.Echo) error {
	return e.Shutdown(ctx)
}
