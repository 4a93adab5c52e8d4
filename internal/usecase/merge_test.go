package usecase

import (
	"testing"
	"time"

	"agenda/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func storedIndividual() *entity.Individual {
	point := orb.Point{-46.6544, -23.5614}

	return &entity.Individual{
		TaxID:       "52998224725",
		Name:        "Maria Silva",
		BirthDate:   time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC),
		Phone:       "11987654321",
		PostalCode:  "01310-100",
		Email:       "maria@example.com",
		Address:     "Avenida Paulista, 1000 - Bela Vista",
		Coordinates: &point,
		CreatedAt:   time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}

func storedOrganization() *entity.Organization {
	return &entity.Organization{
		TaxID:      "11222333000181",
		LegalName:  "Acme Comercio Ltda",
		TradeName:  "Acme",
		Phone:      "11333344445",
		Email:      "contato@acme.com.br",
		Address:    "Rua Augusta, 500 - Consolação",
		PostalCode: "01305-000",
	}
}

func TestMergeIndividual_EmptyCandidateIsIdempotent(t *testing.T) {
	stored := storedIndividual()

	for name, candidate := range map[string]*IndividualInput{
		"nil":    nil,
		"absent": {},
		"blank": {
			Name: ptr(""), BirthDate: ptr(" "), Phone: ptr(""), PostalCode: ptr(""),
			Email: ptr(""), Address: ptr("  "),
		},
	} {
		t.Run(name, func(t *testing.T) {
			merged, err := ApplyIndividual(stored, MergeIndividual(stored, candidate))
			require.NoError(t, err)
			assert.Equal(t, stored, merged)
		})
	}
}

func TestMergeIndividual_PresentFieldsOverwrite(t *testing.T) {
	stored := storedIndividual()
	candidate := &IndividualInput{
		TaxID:     ptr("111.444.777-35"),
		Phone:     ptr("21987654321"),
		BirthDate: ptr("1985-01-31"),
	}

	merged := MergeIndividual(stored, candidate)
	assert.Equal(t, stored.TaxID, *merged.TaxID, "tax id is immutable")
	assert.Equal(t, "21987654321", *merged.Phone)
	assert.Equal(t, stored.Email, *merged.Email)
	assert.Equal(t, stored.Name, *merged.Name)

	record, err := ApplyIndividual(stored, merged)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1985, time.January, 31, 0, 0, 0, 0, time.UTC), record.BirthDate)
	assert.Equal(t, stored.Coordinates, record.Coordinates)
	assert.Equal(t, "11987654321", stored.Phone, "stored record is not mutated")
}

func TestMergeOrganization_EmptyCandidateIsIdempotent(t *testing.T) {
	stored := storedOrganization()

	assert.Equal(t, stored, ApplyOrganization(stored, MergeOrganization(stored, &OrganizationInput{})))
}

func TestMergeOrganization_PresentFieldsOverwrite(t *testing.T) {
	stored := storedOrganization()

	merged := MergeOrganization(stored, &OrganizationInput{TradeName: ptr("Acme Store"), TaxID: ptr("04252011000110")})
	record := ApplyOrganization(stored, merged)

	assert.Equal(t, "Acme Store", record.TradeName)
	assert.Equal(t, stored.TaxID, record.TaxID)
	assert.Equal(t, stored.LegalName, record.LegalName)
}

func TestApplyIndividual_NormalizesTaxID(t *testing.T) {
	record, err := ApplyIndividual(&entity.Individual{}, &IndividualInput{TaxID: ptr("529.982.247-25")})
	require.NoError(t, err)
	assert.Equal(t, "52998224725", record.TaxID)
}

func TestApplyIndividual_RejectsUnparsableBirthDate(t *testing.T) {
	_, err := ApplyIndividual(&entity.Individual{}, &IndividualInput{BirthDate: ptr("20/05/1990")})
	require.Error(t, err)
}

func TestPostalCodeChanged(t *testing.T) {
	assert.False(t, PostalCodeChanged("01310-100", nil))
	assert.False(t, PostalCodeChanged("01310-100", ptr("01310100")))
	assert.True(t, PostalCodeChanged("01310-100", ptr("01305-000")))
}
