package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Organization is a legal entity registered under a CNPJ.
type Organization struct {
	TaxID       string // Normalized 14-digit CNPJ, primary key.
	LegalName   string // Razão social.
	TradeName   string // Nome fantasia.
	Phone       string
	Email       string // Secondary unique key.
	Address     string
	PostalCode  string
	Coordinates *orb.Point
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName is the name used when addressing the organization.
func (o *Organization) DisplayName() string {
	return o.LegalName
}
