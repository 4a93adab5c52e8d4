// Package errors defines the errors the party registry reports to clients.
package errors

import (
	"net/http"

	"agenda/internal/errors"
)

// AppError is an error with a client-facing status, code and message.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional diagnostic text; empty when there is none.
	Details() string
}

// BaseError is a fixed AppError, used for the presets below.
type BaseError struct {
	status  int
	code    string
	message string
}

// NewBaseError creates a BaseError.
func NewBaseError(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return "" }

// Presets. The not-found messages are the ones the HTTP API returns under "erro".
var (
	ErrIndividualNotFound   = NewBaseError(http.StatusNotFound, "INDIVIDUAL_NOT_FOUND", "Usuário não encontrado")
	ErrOrganizationNotFound = NewBaseError(http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Pessoa jurídica não encontrada")
	ErrUnauthorized         = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Credenciais ausentes ou inválidas")
	ErrInternalError        = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do sistema")
)

// DatabaseExecuteError wraps a storage failure. Clients see a generic 500;
// the driver error stays reachable through Unwrap for logs.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError annotates err with the failed operation.
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.operation).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Falha ao acessar o banco de dados" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
