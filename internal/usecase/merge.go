package usecase

import (
	"strings"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"
)

// Present reports whether an optional field carries a value that should
// overwrite a stored one.
func Present(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}

func overlay(candidate *string, stored string) *string {
	if Present(candidate) {
		value := *candidate

		return &value
	}

	return &stored
}

// Fields returns the validation view of the input.
func (in *IndividualInput) Fields() validation.IndividualFields {
	return validation.IndividualFields{
		TaxID:      in.TaxID,
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		Phone:      in.Phone,
		PostalCode: in.PostalCode,
		Email:      in.Email,
		Address:    in.Address,
	}
}

// Fields returns the validation view of the input.
func (in *OrganizationInput) Fields() validation.OrganizationFields {
	return validation.OrganizationFields{
		TaxID:      in.TaxID,
		LegalName:  in.LegalName,
		TradeName:  in.TradeName,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
	}
}

// MergeIndividual overlays every present field of candidate on stored and
// returns a fully populated input. The tax id always comes from stored.
func MergeIndividual(stored *entity.Individual, candidate *IndividualInput) *IndividualInput {
	if candidate == nil {
		candidate = &IndividualInput{}
	}

	return &IndividualInput{
		TaxID:      &stored.TaxID,
		Name:       overlay(candidate.Name, stored.Name),
		BirthDate:  overlay(candidate.BirthDate, stored.BirthDate.Format(validation.BirthDateLayout)),
		Phone:      overlay(candidate.Phone, stored.Phone),
		PostalCode: overlay(candidate.PostalCode, stored.PostalCode),
		Email:      overlay(candidate.Email, stored.Email),
		Address:    overlay(candidate.Address, stored.Address),
	}
}

// MergeOrganization overlays every present field of candidate on stored.
func MergeOrganization(stored *entity.Organization, candidate *OrganizationInput) *OrganizationInput {
	if candidate == nil {
		candidate = &OrganizationInput{}
	}

	return &OrganizationInput{
		TaxID:      &stored.TaxID,
		LegalName:  overlay(candidate.LegalName, stored.LegalName),
		TradeName:  overlay(candidate.TradeName, stored.TradeName),
		Phone:      overlay(candidate.Phone, stored.Phone),
		Email:      overlay(candidate.Email, stored.Email),
		Address:    overlay(candidate.Address, stored.Address),
		PostalCode: overlay(candidate.PostalCode, stored.PostalCode),
	}
}

// ApplyIndividual returns a copy of base with the non-nil fields of in
// written over it. The tax id is normalized. in must already be validated.
func ApplyIndividual(base *entity.Individual, in *IndividualInput) (*entity.Individual, error) {
	out := *base
	if in.TaxID != nil {
		out.TaxID = validation.Digits(*in.TaxID)
	}
	if in.BirthDate != nil {
		born, err := validation.ParseBirthDate(*in.BirthDate)
		if err != nil {
			return nil, errors.Wrap(err, "parse birth date")
		}
		out.BirthDate = born
	}
	assign(&out.Name, in.Name)
	assign(&out.Phone, in.Phone)
	assign(&out.PostalCode, in.PostalCode)
	assign(&out.Email, in.Email)
	assign(&out.Address, in.Address)

	return &out, nil
}

// ApplyOrganization returns a copy of base with the non-nil fields of in written over it.
func ApplyOrganization(base *entity.Organization, in *OrganizationInput) *entity.Organization {
	out := *base
	if in.TaxID != nil {
		out.TaxID = validation.Digits(*in.TaxID)
	}
	assign(&out.LegalName, in.LegalName)
	assign(&out.TradeName, in.TradeName)
	assign(&out.Phone, in.Phone)
	assign(&out.Email, in.Email)
	assign(&out.Address, in.Address)
	assign(&out.PostalCode, in.PostalCode)

	return &out
}

func assign(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// PostalCodeChanged reports whether merged carries a different CEP than stored.
// Formatting differences do not count as a change.
func PostalCodeChanged(stored string, merged *string) bool {
	return merged != nil && validation.Digits(*merged) != validation.Digits(stored)
}
