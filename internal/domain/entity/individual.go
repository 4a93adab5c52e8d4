package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Individual is a natural person registered under a CPF.
type Individual struct {
	TaxID       string     // Normalized 11-digit CPF, primary key.
	Name        string     // Full name.
	BirthDate   time.Time  // Civil date, time component is always zero UTC.
	Phone       string     // Phone as entered; must carry a valid region code.
	PostalCode  string     // CEP as entered.
	Email       string     // Secondary unique key.
	Address     string     // "<street>, <number> - <complement>".
	Coordinates *orb.Point // Derived from PostalCode; nil when the lookup was skipped or failed softly.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName is the name used when addressing the individual.
func (i *Individual) DisplayName() string {
	return i.Name
}
