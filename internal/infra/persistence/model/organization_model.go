package model

import (
	"time"
)

// OrganizationModel mirrors the 'organizations' table. The normalized CNPJ is the primary key.
type OrganizationModel struct {
	TaxID      string `gorm:"column:tax_id;type:char(14);primaryKey"`
	LegalName  string `gorm:"type:varchar(150);not null"`
	TradeName  string `gorm:"type:varchar(150);not null"`
	Phone      string `gorm:"type:varchar(30);not null"`
	Email      string `gorm:"type:varchar(255);not null;uniqueIndex:idx_organizations_email"`
	Address    string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(10);not null"`
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// Models lists every table managed by auto-migration.
func Models() []any {
	return []any{&IndividualModel{}, &OrganizationModel{}}
}
