package impl

import (
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/errors"
	"agenda/internal/infra/metrics"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// outcomeOf classifies err for the operations counter.
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if _, ok := errors.AsType[*domainerrors.ConflictError](err); ok {
		return metrics.OutcomeConflict
	}
	if _, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		return metrics.OutcomeInvalid
	}
	if _, ok := errors.AsType[*domainerrors.ExternalServiceError](err); ok {
		return metrics.OutcomeInvalid
	}
	if errors.Is(err, domainerrors.ErrIndividualNotFound) || errors.Is(err, domainerrors.ErrOrganizationNotFound) {
		return metrics.OutcomeNotFound
	}

	return metrics.OutcomeError
}
