package impl

import (
	"context"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"
)

// uniqueKey is one value that must not already be stored. A nil value is skipped.
type uniqueKey struct {
	field   string
	message string
	value   *string
	exists  func(ctx context.Context, value string) (bool, error)
}

// checkUnique probes keys in order and stops at the first conflict.
func checkUnique(ctx context.Context, keys ...uniqueKey) error {
	for _, key := range keys {
		if key.value == nil {
			continue
		}

		exists, err := key.exists(ctx, *key.value)
		if err != nil {
			return errors.Wrapf(err, "failed to check %s uniqueness", key.field)
		}
		if exists {
			return domainerrors.NewConflictError(key.field, key.message)
		}
	}

	return nil
}

func individualTaxIDKey(repo repository.IndividualRepository, taxID *string) uniqueKey {
	return uniqueKey{
		field:   validation.FieldIndividualTaxID,
		message: validation.MsgIndividualTaxIDTaken,
		value:   taxID,
		exists:  repo.ExistsByID,
	}
}

func individualEmailKey(repo repository.IndividualRepository, email *string) uniqueKey {
	return uniqueKey{
		field:   validation.FieldEmail,
		message: validation.MsgEmailTaken,
		value:   email,
		exists: func(ctx context.Context, email string) (bool, error) {
			_, err := repo.FindByEmail(ctx, email)

			return found(err)
		},
	}
}

func organizationTaxIDKey(repo repository.OrganizationRepository, taxID *string) uniqueKey {
	return uniqueKey{
		field:   validation.FieldOrganizationTaxID,
		message: validation.MsgOrganizationTaxIDTaken,
		value:   taxID,
		exists:  repo.ExistsByID,
	}
}

func organizationEmailKey(repo repository.OrganizationRepository, email *string) uniqueKey {
	return uniqueKey{
		field:   validation.FieldEmail,
		message: validation.MsgEmailTaken,
		value:   email,
		exists: func(ctx context.Context, email string) (bool, error) {
			_, err := repo.FindByEmail(ctx, email)

			return found(err)
		},
	}
}

// found turns a lookup error into an existence answer.
func found(err error) (bool, error) {
	if errors.Is(err, repository.ErrIndividualNotFound) || errors.Is(err, repository.ErrOrganizationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// duplicateToConflict maps the store's unique violations, raised when a
// concurrent write won the race past checkUnique, to the same conflict errors.
func duplicateToConflict(kind entity.PartyKind, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateTaxID):
		if kind == entity.PartyKindOrganization {
			return domainerrors.NewConflictError(validation.FieldOrganizationTaxID, validation.MsgOrganizationTaxIDTaken)
		}

		return domainerrors.NewConflictError(validation.FieldIndividualTaxID, validation.MsgIndividualTaxIDTaken)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.NewConflictError(validation.FieldEmail, validation.MsgEmailTaken)
	default:
		return err
	}
}
