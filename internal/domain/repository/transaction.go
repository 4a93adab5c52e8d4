package repository

import "context"

// TransactionManager runs party writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise, returning fn's error as is.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a single transaction, so the
// uniqueness check and the write that follows it see the same snapshot.
type RepositoryFactory interface {
	NewIndividualRepository() IndividualRepository
	NewOrganizationRepository() OrganizationRepository
}
