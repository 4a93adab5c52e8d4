package middleware

import (
	"log/slog"
	"net/http"

	"agenda/internal/delivery/api/response"
	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error that reaches echo.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the central error handler.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Client errors keep
// their domain shape; anything else becomes an opaque 500 and is logged.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	if unhandled := response.HandleAppError(c, err); unhandled == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
