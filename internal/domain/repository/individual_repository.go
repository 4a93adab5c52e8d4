// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"agenda/internal/domain/entity"
	"agenda/internal/errors"
)

// Domain-specific errors for party persistence.
// Implementations translate driver errors into these so the usecase layer never
// inspects database error codes.
var (
	// ErrIndividualNotFound is returned when no individual has the given tax id.
	ErrIndividualNotFound = errors.New("individual not found")
	// ErrOrganizationNotFound is returned when no organization has the given tax id.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrDuplicateTaxID is returned when an insert collides on the primary key.
	ErrDuplicateTaxID = errors.New("tax id already registered")
	// ErrDuplicateEmail is returned when an insert or update collides on the e-mail unique index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// IndividualRepository defines the persistence operations for individuals.
// Tax ids passed in are always normalized to digits.
type IndividualRepository interface {
	// FindByID retrieves an individual by tax id. Returns ErrIndividualNotFound when absent.
	FindByID(ctx context.Context, taxID string) (*entity.Individual, error)

	// FindByPrefix returns every individual whose tax id starts with prefix.
	FindByPrefix(ctx context.Context, prefix string) ([]*entity.Individual, error)

	// FindByEmail retrieves an individual by e-mail. Returns ErrIndividualNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.Individual, error)

	// ExistsByID reports whether an individual with the tax id is stored.
	ExistsByID(ctx context.Context, taxID string) (bool, error)

	// List returns all individuals ordered by tax id.
	List(ctx context.Context) ([]*entity.Individual, error)

	// Create inserts a new individual.
	Create(ctx context.Context, individual *entity.Individual) error

	// Update overwrites a stored individual.
	Update(ctx context.Context, individual *entity.Individual) error

	// Delete removes an individual. Returns ErrIndividualNotFound when nothing was deleted.
	Delete(ctx context.Context, taxID string) error
}
