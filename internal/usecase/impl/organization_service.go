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

type organizationService struct {
	txManager repository.TransactionManager
	repo      repository.OrganizationRepository
	geocoder  service.Geocoder
	validator *validation.Validator
	policy    GeocodePolicy
	announcer *RegistrationAnnouncer
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// OrganizationServiceParams holds dependencies for OrganizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repo      repository.OrganizationRepository
	Geocoder  service.Geocoder
	Validator *validation.Validator
	Policy    GeocodePolicy
	Announcer *RegistrationAnnouncer
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewOrganizationService is the constructor for organizationService.
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
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

func (srv *organizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *organizationService) observe(operation string, err error) error {
	srv.metrics.IncrementOperation(entity.PartyKindOrganization.String(), operation, outcomeOf(err))
	if verr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		srv.metrics.IncrementValidationFailures(entity.PartyKindOrganization.String(), verr.Fields())
	}

	return err
}

// Create stores a new organization. With the default policy a postal code
// the geocoder cannot resolve rejects the organization.
func (srv *organizationService) Create(ctx context.Context, input *usecase.OrganizationInput) (*entity.Organization, error) {
	record, err := srv.create(ctx, input)
	if err = srv.observe(opCreate, err); err != nil {
		return nil, err
	}

	srv.announcer.Announce(ctx, &service.PartyRegisteredEvent{
		Kind:         entity.PartyKindOrganization.String(),
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

func (srv *organizationService) create(ctx context.Context, input *usecase.OrganizationInput) (*entity.Organization, error) {
	candidate := usecase.OrganizationInput{}
	if input != nil {
		candidate = *input
	}
	if candidate.TaxID != nil {
		taxID := validation.Digits(*candidate.TaxID)
		candidate.TaxID = &taxID
	}

	if candidate.PostalCode == nil || !validation.ValidPostalCode(*candidate.PostalCode) {
		return nil, domainerrors.SingleFieldError(validation.FieldPostalCode, validation.MsgInvalidPostalCode)
	}

	coordinates, err := resolveCoordinates(ctx, srv.geocoder, srv.policy.OrganizationCreate, *candidate.PostalCode, srv.log(ctx))
	if err != nil {
		return nil, err
	}

	invalid := srv.validator.ValidateOrganization(candidate.Fields())

	var record *entity.Organization
	if invalid == nil {
		now := srv.now().UTC()
		record = usecase.ApplyOrganization(&entity.Organization{}, &candidate)
		record.Coordinates = coordinates
		record.CreatedAt = now
		record.UpdatedAt = now
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewOrganizationRepository()

		if err := checkUnique(ctx,
			organizationTaxIDKey(repo, candidate.TaxID),
			organizationEmailKey(repo, candidate.Email),
		); err != nil {
			return err
		}
		if invalid != nil {
			return invalid
		}

		if err := repo.Create(ctx, record); err != nil {
			return duplicateToConflict(entity.PartyKindOrganization, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Organization created", slog.String("taxId", record.TaxID))

	return record, nil
}

// Update merges input over the stored organization.
func (srv *organizationService) Update(ctx context.Context, id string, input *usecase.OrganizationInput) (*entity.Organization, error) {
	record, err := srv.update(ctx, id, input)

	return record, srv.observe(opUpdate, err)
}

func (srv *organizationService) update(ctx context.Context, id string, input *usecase.OrganizationInput) (*entity.Organization, error) {
	stored, err := srv.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := usecase.MergeOrganization(stored, input)

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

	var record *entity.Organization
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewOrganizationRepository()

		if err := checkUnique(ctx, organizationEmailKey(repo, changedEmail)); err != nil {
			return err
		}
		if invalid := srv.validator.ValidateOrganization(merged.Fields()); invalid != nil {
			return invalid
		}

		record = usecase.ApplyOrganization(stored, merged)
		record.Coordinates = coordinates
		record.UpdatedAt = srv.now().UTC()

		if err := repo.Update(ctx, record); err != nil {
			if errors.Is(err, repository.ErrOrganizationNotFound) {
				return domainerrors.ErrOrganizationNotFound
			}

			return duplicateToConflict(entity.PartyKindOrganization, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Organization updated", slog.String("taxId", record.TaxID))

	return record, nil
}

func (srv *organizationService) Get(ctx context.Context, id string) (*entity.Organization, error) {
	return srv.findByID(ctx, id)
}

func (srv *organizationService) findByID(ctx context.Context, id string) (*entity.Organization, error) {
	record, err := srv.repo.FindByID(ctx, validation.Digits(id))
	if errors.Is(err, repository.ErrOrganizationNotFound) {
		return nil, domainerrors.ErrOrganizationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organization")
	}

	return record, nil
}

func (srv *organizationService) List(ctx context.Context) ([]*entity.Organization, error) {
	records, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	return records, nil
}

func (srv *organizationService) SearchByPrefix(ctx context.Context, prefix string) ([]*entity.Organization, error) {
	records, err := srv.repo.FindByPrefix(ctx, validation.Digits(prefix))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search organizations")
	}

	return records, nil
}

func (srv *organizationService) Delete(ctx context.Context, id string) error {
	err := srv.repo.Delete(ctx, validation.Digits(id))
	if errors.Is(err, repository.ErrOrganizationNotFound) {
		err = domainerrors.ErrOrganizationNotFound
	} else if err != nil {
		err = errors.Wrap(err, "failed to delete organization")
	}

	return srv.observe(opDelete, err)
}
