package validation

import (
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
)

// Rule binds one field of a candidate record to its check. A nil Value means
// the field is absent and the rule does not apply.
type Rule struct {
	Field   string
	Message string
	Value   *string
	Check   func(string) bool
}

// Collect evaluates every rule, without stopping at the first failure, and
// returns the failures keyed by field. It returns nil when all rules pass.
func Collect(rules []Rule) *domainerrors.ValidationError {
	failures := make(map[string]string)
	for _, rule := range rules {
		if rule.Value == nil {
			continue
		}
		if !rule.Check(*rule.Value) {
			failures[rule.Field] = rule.Message
		}
	}

	return domainerrors.NewValidationError(failures)
}

// IndividualFields is the string view of an individual under validation.
type IndividualFields struct {
	TaxID      *string
	Name       *string
	BirthDate  *string
	Phone      *string
	PostalCode *string
	Email      *string
	Address    *string
}

// OrganizationFields is the string view of an organization under validation.
type OrganizationFields struct {
	TaxID      *string
	LegalName  *string
	TradeName  *string
	Phone      *string
	Email      *string
	Address    *string
	PostalCode *string
}

// IndividualRules returns the rule table for an individual.
func (v *Validator) IndividualRules(f IndividualFields) []Rule {
	return []Rule{
		{FieldIndividualTaxID, MsgInvalidIndividualTaxID, f.TaxID, ValidIndividualTaxID},
		{FieldEmail, MsgInvalidEmail, f.Email, v.ValidEmail},
		{FieldBirthDate, MsgInvalidBirthDate, f.BirthDate, v.ValidBirthDate},
		{FieldPostalCode, MsgInvalidPostalCode, f.PostalCode, ValidPostalCode},
		{FieldPhone, MsgInvalidPhone, f.Phone, v.ValidPhone},
		{FieldAddress, MsgInvalidAddress, f.Address, ValidAddress},
		{FieldName, MsgInvalidName, f.Name, ValidName},
	}
}

// OrganizationRules returns the rule table for an organization.
func (v *Validator) OrganizationRules(f OrganizationFields) []Rule {
	return []Rule{
		{FieldOrganizationTaxID, MsgInvalidOrganizationTaxID, f.TaxID, ValidOrganizationTaxID},
		{FieldLegalName, MsgInvalidLegalName, f.LegalName, ValidName},
		{FieldTradeName, MsgInvalidTradeName, f.TradeName, ValidName},
		{FieldPhone, MsgInvalidPhone, f.Phone, v.ValidPhone},
		{FieldEmail, MsgInvalidEmail, f.Email, v.ValidEmail},
		{FieldAddress, MsgInvalidAddress, f.Address, ValidAddress},
		{FieldPostalCode, MsgInvalidPostalCode, f.PostalCode, ValidPostalCode},
	}
}

// ValidateIndividual runs the individual rule table.
func (v *Validator) ValidateIndividual(f IndividualFields) *domainerrors.ValidationError {
	return Collect(v.IndividualRules(f))
}

// ValidateOrganization runs the organization rule table.
func (v *Validator) ValidateOrganization(f OrganizationFields) *domainerrors.ValidationError {
	return Collect(v.OrganizationRules(f))
}

// TaxIDField returns the error-mapping field name for the kind's tax id.
func TaxIDField(kind entity.PartyKind) string {
	if kind == entity.PartyKindOrganization {
		return FieldOrganizationTaxID
	}

	return FieldIndividualTaxID
}
