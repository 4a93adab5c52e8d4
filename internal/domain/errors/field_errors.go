package errors

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

// FieldErrors is implemented by errors whose payload is a field → message
// mapping meant to be shown to the client as is.
type FieldErrors interface {
	AppError
	Fields() map[string]string
}

// ValidationError is the batched result of the format and checksum pass.
// It always holds at least one field.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a ValidationError, or returns nil when fields is empty.
func NewValidationError(fields map[string]string) *ValidationError {
	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{fields: maps.Clone(fields)}
}

// SingleFieldError is a ValidationError holding one field.
func SingleFieldError(field, message string) *ValidationError {
	return &ValidationError{fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(slices.Sorted(maps.Keys(e.fields)), ", ")
}

func (e *ValidationError) Fields() map[string]string { return maps.Clone(e.fields) }
func (e *ValidationError) HTTPCode() int              { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string          { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string            { return "Erros de validação encontrados" }
func (e *ValidationError) Details() string            { return "" }

// ConflictError reports a tax id or e-mail that already belongs to another
// record. Uniqueness is checked field by field and stops at the first hit.
type ConflictError struct {
	field   string
	message string
}

// NewConflictError creates a ConflictError for a single field.
func NewConflictError(field, message string) *ConflictError {
	return &ConflictError{field: field, message: message}
}

func (e *ConflictError) Error() string {
	return "conflict on " + e.field + ": " + e.message
}

// Field returns the conflicting field name.
func (e *ConflictError) Field() string { return e.field }

func (e *ConflictError) Fields() map[string]string { return map[string]string{e.field: e.message} }
func (e *ConflictError) HTTPCode() int              { return http.StatusBadRequest }
func (e *ConflictError) ErrorCode() string          { return "ALREADY_REGISTERED" }
func (e *ConflictError) Message() string            { return e.message }
func (e *ConflictError) Details() string            { return "" }

// ExternalServiceError is a geocode provider failure that a strict policy
// refuses to tolerate. It is displayed against the postal code field.
type ExternalServiceError struct {
	field   string
	message string
	err     error
}

// NewExternalServiceError creates an ExternalServiceError wrapping the provider failure.
func NewExternalServiceError(field, message string, err error) *ExternalServiceError {
	return &ExternalServiceError{field: field, message: message, err: err}
}

func (e *ExternalServiceError) Error() string {
	if e.err == nil {
		return "external service: " + e.message
	}

	return "external service: " + e.message + ": " + e.err.Error()
}

func (e *ExternalServiceError) Unwrap() error { return e.err }

func (e *ExternalServiceError) Fields() map[string]string { return map[string]string{e.field: e.message} }
func (e *ExternalServiceError) HTTPCode() int              { return http.StatusBadRequest }
func (e *ExternalServiceError) ErrorCode() string          { return "EXTERNAL_SERVICE_FAILED" }
func (e *ExternalServiceError) Message() string            { return e.message }
func (e *ExternalServiceError) Details() string            { return "" }
