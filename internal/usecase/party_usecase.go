// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agenda/internal/domain/entity"
)

// IndividualUsecase defines the registry operations for individuals.
// Every id argument may be formatted; it is normalized to digits first.
type IndividualUsecase interface {
	// Create validates, geocodes and stores a new individual, then sends the confirmation.
	Create(ctx context.Context, input *IndividualInput) (*entity.Individual, error)

	// Update merges input over the stored individual, re-validates and stores the result.
	Update(ctx context.Context, id string, input *IndividualInput) (*entity.Individual, error)

	Get(ctx context.Context, id string) (*entity.Individual, error)
	List(ctx context.Context) ([]*entity.Individual, error)

	// SearchByPrefix returns individuals whose tax id starts with the digits of prefix.
	SearchByPrefix(ctx context.Context, prefix string) ([]*entity.Individual, error)

	Delete(ctx context.Context, id string) error
}

// OrganizationUsecase defines the registry operations for organizations.
type OrganizationUsecase interface {
	Create(ctx context.Context, input *OrganizationInput) (*entity.Organization, error)
	Update(ctx context.Context, id string, input *OrganizationInput) (*entity.Organization, error)
	Get(ctx context.Context, id string) (*entity.Organization, error)
	List(ctx context.Context) ([]*entity.Organization, error)
	SearchByPrefix(ctx context.Context, prefix string) ([]*entity.Organization, error)
	Delete(ctx context.Context, id string) error
}

// --- Input DTOs ---

// IndividualInput carries the candidate fields of an individual. A nil field
// is absent; on update an absent or blank field keeps the stored value.
type IndividualInput struct {
	TaxID      *string `json:"cpf,omitempty"`
	Name       *string `json:"nome,omitempty"`
	BirthDate  *string `json:"dataNascimento,omitempty"` // yyyy-mm-dd
	Phone      *string `json:"telefone,omitempty"`
	PostalCode *string `json:"cep,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"endereco,omitempty"`
}

// OrganizationInput carries the candidate fields of an organization.
type OrganizationInput struct {
	TaxID      *string `json:"cnpj,omitempty"`
	LegalName  *string `json:"razaoSocial,omitempty"`
	TradeName  *string `json:"nomeFantasia,omitempty"`
	Phone      *string `json:"telefone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"endereco,omitempty"`
	PostalCode *string `json:"cep,omitempty"`
}
