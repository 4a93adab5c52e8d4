// Package entity contains the core business objects of the project.
package entity

// PartyKind distinguishes the two registries kept by the service.
type PartyKind string

const (
	// PartyKindIndividual is a natural person identified by an 11-digit CPF.
	PartyKindIndividual PartyKind = "individual"
	// PartyKindOrganization is a legal entity identified by a 14-digit CNPJ.
	PartyKindOrganization PartyKind = "organization"
)

// String returns the string representation of the PartyKind.
func (k PartyKind) String() string {
	return string(k)
}

// IsValid checks if the PartyKind is a known value.
func (k PartyKind) IsValid() bool {
	switch k {
	case PartyKindIndividual, PartyKindOrganization:
		return true
	default:
		return false
	}
}

// TaxIDLength returns the number of digits of the kind's tax identifier.
func (k PartyKind) TaxIDLength() int {
	switch k {
	case PartyKindIndividual:
		return 11
	case PartyKindOrganization:
		return 14
	default:
		return 0
	}
}
