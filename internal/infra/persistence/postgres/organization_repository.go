package postgres

import (
	"context"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/errors"
	"agenda/internal/infra/persistence/model"

		"gorm.io/gorm"
)

// organizationRepository implements repository.OrganizationRepository using GORM.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (repo *organizationRepository) FindByID(ctx context.Context, taxID string) (*entity.Organization, error) {
	var row model.OrganizationModel
	err := repo.db.WithContext(ctx).Where("tax_id = ?", taxID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by tax id")
	}

	return toOrganizationDomain(&row), nil
}

// FindByPrefix matches on the leading digits of the primary key; an empty prefix lists everything.
func (repo *organizationRepository) FindByPrefix(ctx context.Context, prefix string) ([]*entity.Organization, error) {
	var rows []*model.OrganizationModel
	err := repo.db.WithContext(ctx).
		Where("tax_id LIKE ?", prefix+"%").
		Order("tax_id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by prefix")
	}

	return toOrganizationsDomain(rows), nil
}

func (repo *organizationRepository) FindByEmail(ctx context.Context, email string) (*entity.Organization, error) {
	var row model.OrganizationModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by email")
	}

	return toOrganizationDomain(&row), nil
}

func (repo *organizationRepository) ExistsByID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check organization existence")
	}

	return count > 0, nil
}

func (repo *organizationRepository) List(ctx context.Context) ([]*entity.Organization, error) {
	var rows []*model.OrganizationModel
	if err := repo.db.WithContext(ctx).Order("tax_id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	return toOrganizationsDomain(rows), nil
}

func (repo *organizationRepository) Create(ctx context.Context, organization *entity.Organization) error {
	row := fromOrganizationDomain(organization)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if dup := translateDuplicate(err); dup != err {
			return dup
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required organization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organization")
	}

	organization.CreatedAt = row.CreatedAt
	organization.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *organizationRepository) Update(ctx context.Context, organization *entity.Organization) error {
	row := fromOrganizationDomain(organization)

	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("tax_id = ?", row.TaxID).
		Select("*").
		Omit("tax_id", "created_at").
		Updates(row)
	if result.Error != nil {
		if dup := translateDuplicate(result.Error); dup != result.Error {
			return dup
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	organization.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *organizationRepository) Delete(ctx context.Context, taxID string) error {
	result := repo.db.WithContext(ctx).Where("tax_id = ?", taxID).Delete(&model.OrganizationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		TaxID:       data.TaxID,
		LegalName:   data.LegalName,
		TradeName:   data.TradeName,
		Phone:       data.Phone,
		Email:       data.Email,
		Address:     data.Address,
		PostalCode:  data.PostalCode,
		Coordinates: toPoint(data.Latitude, data.Longitude),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOrganizationsDomain(rows []*model.OrganizationModel) []*entity.Organization {
	organizations := make([]*entity.Organization, 0, len(rows))
	for _, row := range rows {
		organizations = append(organizations, toOrganizationDomain(row))
	}

	return organizations
}

func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	lat, lng := fromPoint(data.Coordinates)

	return &model.OrganizationModel{
		TaxID:      data.TaxID,
		LegalName:  data.LegalName,
		TradeName:  data.TradeName,
		Phone:      data.Phone,
		Email:      data.Email,
		Address:    data.Address,
		PostalCode: data.PostalCode,
		Latitude:   lat,
		Longitude:  lng,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
