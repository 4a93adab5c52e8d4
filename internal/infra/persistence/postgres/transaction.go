// Package postgres implements the party repositories on PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"

	"agenda/internal/domain/repository"
	"agenda/internal/errors"

	"gorm.io/gorm"
)

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewIndividualRepository() repository.IndividualRepository {
	return NewIndividualRepository(f.tx)
}

func (f txRepositories) NewOrganizationRepository() repository.OrganizationRepository {
	return NewOrganizationRepository(f.tx)
}

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in a read-committed transaction. The uniqueness lookups and
// the write share it, and the unique indexes settle any race between two
// concurrent registrations. fn's error is returned unwrapped so callers can
// match domain sentinels.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "party transaction failed")
	default:
		return nil
	}
}
