package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "usuarios/internal/domain/errors"
	"usuarios/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers onto the API's error
// envelopes. Anything that is not a known AppError collapses to a generic
// 500; raw backend error text never reaches the client.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Authentication failures use the login envelope, everything else
		// the plain {"erro"} shape.
		if appErr.HTTPCode() == http.StatusUnauthorized {
			_ = response.WriteLoginFailure(c, appErr.HTTPCode(), appErr.Message())

			return
		}

		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Storage fault",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.WriteError(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.WriteError(c, httpErr.Code, message)

		return
	}

	// Unknown error: log the cause, answer with the generic phrase only.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.WriteError(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}
