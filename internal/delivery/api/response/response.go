// Package response writes the JSON bodies of the party API.
//
// Successful reads and writes use the {data, meta} envelope. Field errors are
// written as a bare field → message object and a missing record as {"erro": ...},
// which is what existing registry clients parse.
package response

import (
	"net/http"

	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every 2xx body.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of errors that are not field errors.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data inside the envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes the error envelope. Details are dropped on 401, 403 and 5xx.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// Fields writes the field → message map as the whole body.
func Fields(c echo.Context, statusCode int, fields map[string]string) error {
	return c.JSON(statusCode, fields)
}

// NotFound writes {"erro": message}.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"erro": message})
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes client errors (field maps, not found, other 4xx).
// Server errors and unknown errors are returned for the central handler.
func HandleAppError(c echo.Context, err error) error {
	if fieldErr, ok := errors.AsType[domainerrors.FieldErrors](err); ok {
		return Fields(c, fieldErr.HTTPCode(), fieldErr.Fields())
	}

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	switch {
	case !ok || appErr.HTTPCode() >= http.StatusInternalServerError:
		return errors.WithStack(err)
	case appErr.HTTPCode() == http.StatusNotFound:
		return NotFound(c, appErr.Message())
	default:
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}
}
