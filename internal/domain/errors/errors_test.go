package errors

import (
	"net/http"
	"testing"

	"agenda/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	assert.Nil(t, NewValidationError(nil))

	fields := map[string]string{"email": "E-mail inválido", "cpf": "CPF inválido"}
	err := NewValidationError(fields)
	require.NotNil(t, err)

	fields["cep"] = "CEP inválido"
	assert.Len(t, err.Fields(), 2)
	assert.Equal(t, "validation failed: cpf, email", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestFieldErrorsAreDiscoverableThroughWrapping(t *testing.T) {
	providerErr := errors.New("timeout")

	for name, err := range map[string]error{
		"validation": SingleFieldError("cep", "CEP inválido"),
		"conflict":   NewConflictError("cpf", "CPF já cadastrado"),
		"external":   NewExternalServiceError("cep", "Não foi possível obter as coordenadas para este CEP", providerErr),
	} {
		t.Run(name, func(t *testing.T) {
			wrapped := errors.Wrap(err, "create individual")

			fieldErr, ok := errors.AsType[FieldErrors](wrapped)
			require.True(t, ok)
			assert.Len(t, fieldErr.Fields(), 1)
			assert.Equal(t, http.StatusBadRequest, fieldErr.HTTPCode())
		})
	}

	assert.ErrorIs(t, NewExternalServiceError("cep", "x", providerErr), providerErr)
}

func TestDatabaseExecuteError(t *testing.T) {
	driverErr := errors.New("connection reset")
	err := NewDatabaseExecuteError(driverErr, "create individual")

	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "create individual: connection reset", err.Error())
	assert.NotContains(t, err.Message(), "connection")
}
