package model

import (
	"time"
)

// IndividualModel mirrors the 'individuals' table. The normalized CPF is the primary key.
type IndividualModel struct {
	TaxID      string    `gorm:"column:tax_id;type:char(11);primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null"`
	BirthDate  time.Time `gorm:"type:date;not null"`
	Phone      string    `gorm:"type:varchar(30);not null"`
	PostalCode string    `gorm:"type:varchar(10);not null"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_individuals_email"`
	Address    string    `gorm:"type:varchar(255);not null"`
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndividualModel) TableName() string {
	return "individuals"
}
