package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"productapi/internal/usecase"
	"productapi/internal/validator"

	"github.com/labstack/echo/v4"
)

const (
	MsgValidationFailed = "Validation failed"
	MsgMalformedBody    = "Malformed request body"
)

// 全エンドポイント共通のレスポンス
type Envelope struct {
	Status  bool             `json:"status"`
	Message string           `json:"message"`
	Data    any              `json:"data,omitempty"`
	Errors  validator.Errors `json:"errors,omitempty"`
}

func success(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Status: true, Message: message, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Status: false, Message: message})
}

// 422
func validationFailed(c echo.Context, errs validator.Errors) error {
	return c.JSON(http.StatusUnprocessableEntity, Envelope{
		Status:  false,
		Message: MsgValidationFailed,
		Errors:  errs,
	})
}

func writeError(c echo.Context, logger *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.Errors
	if errors.As(err, &verrs) {
		return validationFailed(c, verrs)
	}

	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"status", he.Status, "path", c.Path(), "error", he.Err)
		}
		return fail(c, he.Status, he.Message)
	}

	//500
	logger.ErrorContext(c.Request().Context(), "unexpected error", "path", c.Path(), "error", err)
	return fail(c, http.StatusInternalServerError, usecase.MsgInternalError)
}

// ErrorHandler はecho本体のエラー（404/405/panic）もEnvelopeで返す
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok && s != "" {
				msg = s
			}
			if he.Code >= http.StatusInternalServerError {
				logger.ErrorContext(c.Request().Context(), "http error", "status", he.Code, "error", fmt.Sprint(he.Internal))
				msg = usecase.MsgInternalError
			}
			_ = respond(c, he.Code, msg)
			return
		}

		_ = writeError(c, logger, err)
	}
}

// HEADはボディを書かない
func respond(c echo.Context, status int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}
	return fail(c, status, message)
}
