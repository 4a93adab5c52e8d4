// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"
	"agenda/internal/infra/metrics"
	"agenda/internal/usecase"

	"go.uber.org/fx"
)

// individualService implements the IndividualUsecase interface.
type individualService struct {
	txManager repository.TransactionManager
	repo      repository.IndividualRepository
	geocoder  service.Geocoder
	validator *validation.Validator
	policy    GeocodePolicy
	announcer *RegistrationAnnouncer
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// IndividualServiceParams holds dependencies for IndividualService, injected by Fx.
type IndividualServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repo      repository.IndividualRepository
	Geocoder  service.Geocoder
	Validator *validation.Validator
	Policy    GeocodePolicy
	Announcer *RegistrationAnnouncer
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewIndividualService is the constructor for individualService.
func NewIndividualService(params IndividualServiceParams) usecase.IndividualUsecase {
	return &individualService{
		txManager: params.TxManager,
		repo:      params.Repo,
		geocoder:  params.Geocoder,
		validator: params.Validator,
		policy:    params.Policy,
		announcer: params.Announcer,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *individualService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *individualService) observe(operation string, err error) error {
	srv.metrics.IncrementOperation(entity.PartyKindIndividual.String(), operation, outcomeOf(err))
	if verr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		srv.metrics.IncrementValidationFailures(entity.PartyKindIndividual.String(), verr.Fields())
	}

	return err
}

// Create runs the creation pipeline: postal code gate, geocoding, the batched
// field pass, fail-fast uniqueness, then the insert.
func (srv *individualService) Create(ctx context.Context, input *usecase.IndividualInput) (*entity.Individual, error) {
	record, err := srv.create(ctx, input)
	if err = srv.observe(opCreate, err); err != nil {
		return nil, err
	}

	srv.announcer.Announce(ctx, &service.PartyRegisteredEvent{
		Kind:         entity.PartyKindIndividual.String(),
		TaxID:        record.TaxID,
		DisplayName:  record.DisplayName(),
		Email:        record.Email,
		PostalCode:   record.PostalCode,
		Latitude:     latitude(record.Coordinates),
		Longitude:    longitude(record.Coordinates),
		RegisteredAt: record.CreatedAt,
	})

	return record, nil
}

func (srv *individualService) create(ctx context.Context, input *usecase.IndividualInput) (*entity.Individual, error) {
	candidate := usecase.IndividualInput{}
	if input != nil {
		candidate = *input
	}
	if candidate.TaxID != nil {
		taxID := validation.Digits(*candidate.TaxID)
		candidate.TaxID = &taxID
	}

	// Geocoding needs a well-formed postal code, so this gate runs before the batch.
	if candidate.PostalCode == nil || !validation.ValidPostalCode(*candidate.PostalCode) {
		return nil, domainerrors.SingleFieldError(validation.FieldPostalCode, validation.MsgInvalidPostalCode)
	}

	coordinates, err := resolveCoordinates(ctx, srv.geocoder, srv.policy.IndividualCreate, *candidate.PostalCode, srv.log(ctx))
	if err != nil {
		return nil, err
	}

	invalid := srv.validator.ValidateIndividual(candidate.Fields())

	var record *entity.Individual
	if invalid == nil {
		record, err = usecase.ApplyIndividual(&entity.Individual{}, &candidate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build individual")
		}
		now := srv.now().UTC()
		record.Coordinates = coordinates
		record.CreatedAt = now
		record.UpdatedAt = now
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewIndividualRepository()

		// A conflict wins over format failures collected above.
		if err := checkUnique(ctx,
			individualTaxIDKey(repo, candidate.TaxID),
			individualEmailKey(repo, candidate.Email),
		); err != nil {
			return err
		}
		if invalid != nil {
			return invalid
		}

		if err := repo.Create(ctx, record); err != nil {
			return duplicateToConflict(entity.PartyKindIndividual, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Individual created", slog.String("taxId", record.TaxID))

	return record, nil
}

// Update merges input over the stored individual. Only a changed postal code
// is geocoded again and only a changed e-mail is checked for uniqueness.
func (srv *individualService) Update(ctx context.Context, id string, input *usecase.IndividualInput) (*entity.Individual, error) {
	record, err := srv.update(ctx, id, input)

	return record, srv.observe(opUpdate, err)
}

func (srv *individualService) update(ctx context.Context, id string, input *usecase.IndividualInput) (*entity.Individual, error) {
	stored, err := srv.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := usecase.MergeIndividual(stored, input)

	coordinates := stored.Coordinates
	if usecase.PostalCodeChanged(stored.PostalCode, merged.PostalCode) {
		if !validation.ValidPostalCode(*merged.PostalCode) {
			return nil, domainerrors.SingleFieldError(validation.FieldPostalCode, validation.MsgInvalidPostalCode)
		}

		point, err := resolveCoordinates(ctx, srv.geocoder, srv.policy.Update, *merged.PostalCode, srv.log(ctx))
		if err != nil {
			return nil, err
		}
		if point != nil {
			coordinates = point
		}
	}

	var changedEmail *string
	if *merged.Email != stored.Email {
		changedEmail = merged.Email
	}

	var record *entity.Individual
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewIndividualRepository()

		if err := checkUnique(ctx, individualEmailKey(repo, changedEmail)); err != nil {
			return err
		}
		if invalid := srv.validator.ValidateIndividual(merged.Fields()); invalid != nil {
			return invalid
		}

		var err error
		record, err = usecase.ApplyIndividual(stored, merged)
		if err != nil {
			return errors.Wrap(err, "failed to merge individual")
		}
		record.Coordinates = coordinates
		record.UpdatedAt = srv.now().UTC()

		if err := repo.Update(ctx, record); err != nil {
			if errors.Is(err, repository.ErrIndividualNotFound) {
				return domainerrors.ErrIndividualNotFound
			}

			return duplicateToConflict(entity.PartyKindIndividual, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Individual updated", slog.String("taxId", record.TaxID))

	return record, nil
}

// Get retrieves an individual by tax id.
func (srv *individualService) Get(ctx context.Context, id string) (*entity.Individual, error) {
	return srv.findByID(ctx, id)
}

func (srv *individualService) findByID(ctx context.Context, id string) (*entity.Individual, error) {
	record, err := srv.repo.FindByID(ctx, validation.Digits(id))
	if errors.Is(err, repository.ErrIndividualNotFound) {
		return nil, domainerrors.ErrIndividualNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find individual")
	}

	return record, nil
}

// List returns every individual.
func (srv *individualService) List(ctx context.Context) ([]*entity.Individual, error) {
	records, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list individuals")
	}

	return records, nil
}

// SearchByPrefix returns the individuals whose tax id starts with prefix.
func (srv *individualService) SearchByPrefix(ctx context.Context, prefix string) ([]*entity.Individual, error) {
	records, err := srv.repo.FindByPrefix(ctx, validation.Digits(prefix))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search individuals")
	}

	return records, nil
}

// Delete removes an individual by tax id.
func (srv *individualService) Delete(ctx context.Context, id string) error {
	err := srv.repo.Delete(ctx, validation.Digits(id))
	if errors.Is(err, repository.ErrIndividualNotFound) {
		err = domainerrors.ErrIndividualNotFound
	} else if err != nil {
		err = errors.Wrap(err, "failed to delete individual")
	}

	return srv.observe(opDelete, err)
}
