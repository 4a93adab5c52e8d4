package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func validIndividual() IndividualFields {
	return IndividualFields{
		TaxID:      ptr("52998224725"),
		Name:       ptr("Maria Silva"),
		BirthDate:  ptr("1990-05-20"),
		Phone:      ptr("11987654321"),
		PostalCode: ptr("01310-100"),
		Email:      ptr("maria@example.com"),
		Address:    ptr("Avenida Paulista, 1000 - Bela Vista"),
	}
}

func TestValidator_ValidateIndividual_Valid(t *testing.T) {
	v := New(WithClock(fixedClock(2024, time.March, 15)))

	assert.Nil(t, v.ValidateIndividual(validIndividual()))
}

func TestValidator_ValidateIndividual_CollectsEveryFailure(t *testing.T) {
	v := New(WithClock(fixedClock(2024, time.March, 15)))

	fields := IndividualFields{
		TaxID:      ptr("52998224726"),
		Name:       ptr("Al"),
		BirthDate:  ptr("2024-03-16"),
		Phone:      ptr("10987654321"),
		PostalCode: ptr("00000-000"),
		Email:      ptr("maria@yopmail.com"),
		Address:    ptr("Avenida Paulista"),
	}

	verr := v.ValidateIndividual(fields)
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{
		FieldIndividualTaxID: MsgInvalidIndividualTaxID,
		FieldName:            MsgInvalidName,
		FieldBirthDate:       MsgInvalidBirthDate,
		FieldPhone:           MsgInvalidPhone,
		FieldPostalCode:      MsgInvalidPostalCode,
		FieldEmail:           MsgInvalidEmail,
		FieldAddress:         MsgInvalidAddress,
	}, verr.Fields())
}

func TestValidator_ValidateIndividual_AbsentFieldsAreSkipped(t *testing.T) {
	v := New()

	assert.Nil(t, v.ValidateIndividual(IndividualFields{}))

	verr := v.ValidateIndividual(IndividualFields{Phone: ptr("123")})
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{FieldPhone: MsgInvalidPhone}, verr.Fields())
}

func TestValidator_ValidateOrganization(t *testing.T) {
	v := New()

	valid := OrganizationFields{
		TaxID:      ptr("11.222.333/0001-81"),
		LegalName:  ptr("Acme Comercio Ltda"),
		TradeName:  ptr("Acme"),
		Phone:      ptr("(11) 3333-44445"),
		Email:      ptr("contato@acme.com.br"),
		Address:    ptr("Rua Augusta, 500 - Consolação"),
		PostalCode: ptr("01305-000"),
	}
	assert.Nil(t, v.ValidateOrganization(valid))

	invalid := valid
	invalid.TaxID = ptr("11.222.333/0001-82")
	invalid.TradeName = ptr("A1")
	verr := v.ValidateOrganization(invalid)
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{
		FieldOrganizationTaxID: MsgInvalidOrganizationTaxID,
		FieldTradeName:         MsgInvalidTradeName,
	}, verr.Fields())
}

func TestCollect_EmptyValueIsPresent(t *testing.T) {
	verr := Collect([]Rule{{Field: "f", Message: "bad", Value: ptr(""), Check: func(s string) bool { return s != "" }}})
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{"f": "bad"}, verr.Fields())
}
