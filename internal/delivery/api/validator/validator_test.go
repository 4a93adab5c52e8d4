package validator

import (
	"testing"

	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	TaxID *string `json:"cpf" validate:"required,notblank"`
	Name  *string `json:"nome,omitempty" validate:"required,notblank"`
}

func (createRequest) RequiredMessages() map[string]string {
	return map[string]string{"cpf": "CPF é obrigatório"}
}

type searchQuery struct {
	Prefix string `query:"prefixo" validate:"cnpj_prefix"`
}

func ptr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	verr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok, "expected a validation error, got %v", err)

	return verr.Fields()
}

func TestValidate_Required(t *testing.T) {
	v := New()

	err := v.Validate(&createRequest{Name: ptr("   ")})

	assert.Equal(t, map[string]string{
		"cpf":  "CPF é obrigatório",
		"nome": msgRequired,
	}, fieldsOf(t, err))
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&createRequest{TaxID: ptr("529.982.247-25"), Name: ptr("Maria")}))
}

func TestValidate_Prefix(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&searchQuery{Prefix: ""}))
	assert.NoError(t, v.Validate(&searchQuery{Prefix: "11.222.333/0001-81"}))
	assert.Equal(t, map[string]string{"prefixo": msgInvalidPrefix}, fieldsOf(t, v.Validate(&searchQuery{Prefix: "11a"})))
	assert.Equal(t, map[string]string{"prefixo": msgInvalidPrefix}, fieldsOf(t, v.Validate(&searchQuery{Prefix: "112223330001810"})))
}
