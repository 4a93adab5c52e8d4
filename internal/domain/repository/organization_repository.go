package repository

import (
	"context"

	"agenda/internal/domain/entity"
)

// OrganizationRepository defines the persistence operations for organizations.
type OrganizationRepository interface {
	// FindByID retrieves an organization by tax id. Returns ErrOrganizationNotFound when absent.
	FindByID(ctx context.Context, taxID string) (*entity.Organization, error)

	// FindByPrefix returns every organization whose tax id starts with prefix.
	FindByPrefix(ctx context.Context, prefix string) ([]*entity.Organization, error)

	// FindByEmail retrieves an organization by e-mail. Returns ErrOrganizationNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.Organization, error)

	// ExistsByID reports whether an organization with the tax id is stored.
	ExistsByID(ctx context.Context, taxID string) (bool, error)

	// List returns all organizations ordered by tax id.
	List(ctx context.Context) ([]*entity.Organization, error)

	// Create inserts a new organization.
	Create(ctx context.Context, organization *entity.Organization) error

	// Update overwrites a stored organization.
	Update(ctx context.Context, organization *entity.Organization) error

	// Delete removes an organization. Returns ErrOrganizationNotFound when nothing was deleted.
	Delete(ctx context.Context, taxID string) error
}
