package postgres

import (
	"context"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/errors"
	"agenda/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// individualRepository implements repository.IndividualRepository using GORM.
type individualRepository struct {
	db *gorm.DB
}

// NewIndividualRepository is the constructor for individualRepository.
func NewIndividualRepository(db *gorm.DB) repository.IndividualRepository {
	return &individualRepository{db: db}
}

func (repo *individualRepository) FindByID(ctx context.Context, taxID string) (*entity.Individual, error) {
	var row model.IndividualModel
	err := repo.db.WithContext(ctx).Where("tax_id = ?", taxID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIndividualNotFound
		}

		return nil, errors.Wrap(err, "failed to find individual by tax id")
	}

	return toIndividualDomain(&row), nil
}

// FindByPrefix matches on the leading digits of the primary key; an empty prefix lists everything.
func (repo *individualRepository) FindByPrefix(ctx context.Context, prefix string) ([]*entity.Individual, error) {
	var rows []*model.IndividualModel
	err := repo.db.WithContext(ctx).
		Where("tax_id LIKE ?", prefix+"%").
		Order("tax_id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find individuals by prefix")
	}

	return toIndividualsDomain(rows), nil
}

func (repo *individualRepository) FindByEmail(ctx context.Context, email string) (*entity.Individual, error) {
	var row model.IndividualModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIndividualNotFound
		}

		return nil, errors.Wrap(err, "failed to find individual by email")
	}

	return toIndividualDomain(&row), nil
}

func (repo *individualRepository) ExistsByID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.IndividualModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check individual existence")
	}

	return count > 0, nil
}

func (repo *individualRepository) List(ctx context.Context) ([]*entity.Individual, error) {
	var rows []*model.IndividualModel
	if err := repo.db.WithContext(ctx).Order("tax_id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list individuals")
	}

	return toIndividualsDomain(rows), nil
}

func (repo *individualRepository) Create(ctx context.Context, individual *entity.Individual) error {
	row := fromIndividualDomain(individual)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if dup := translateDuplicate(err); dup != err {
			return dup
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required individual information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create individual")
	}

	individual.CreatedAt = row.CreatedAt
	individual.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *individualRepository) Update(ctx context.Context, individual *entity.Individual) error {
	row := fromIndividualDomain(individual)

	result := repo.db.WithContext(ctx).
		Model(&model.IndividualModel{}).
		Where("tax_id = ?", row.TaxID).
		Select("*").
		Omit("tax_id", "created_at").
		Updates(row)
	if result.Error != nil {
		if dup := translateDuplicate(result.Error); dup != result.Error {
			return dup
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update individual")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIndividualNotFound
	}

	individual.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *individualRepository) Delete(ctx context.Context, taxID string) error {
	result := repo.db.WithContext(ctx).Where("tax_id = ?", taxID).Delete(&model.IndividualModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete individual")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIndividualNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toIndividualDomain(data *model.IndividualModel) *entity.Individual {
	if data == nil {
		return nil
	}

	return &entity.Individual{
		TaxID:       data.TaxID,
		Name:        data.Name,
		BirthDate:   data.BirthDate.UTC(),
		Phone:       data.Phone,
		PostalCode:  data.PostalCode,
		Email:       data.Email,
		Address:     data.Address,
		Coordinates: toPoint(data.Latitude, data.Longitude),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toIndividualsDomain(rows []*model.IndividualModel) []*entity.Individual {
	individuals := make([]*entity.Individual, 0, len(rows))
	for _, row := range rows {
		individuals = append(individuals, toIndividualDomain(row))
	}

	return individuals
}

func fromIndividualDomain(data *entity.Individual) *model.IndividualModel {
	if data == nil {
		return nil
	}

	lat, lng := fromPoint(data.Coordinates)

	return &model.IndividualModel{
		TaxID:      data.TaxID,
		Name:       data.Name,
		BirthDate:  data.BirthDate,
		Phone:      data.Phone,
		PostalCode: data.PostalCode,
		Email:      data.Email,
		Address:    data.Address,
		Latitude:   lat,
		Longitude:  lng,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toPoint rebuilds coordinates; both columns must be set.
func toPoint(lat, lng *float64) *orb.Point {
	if lat == nil || lng == nil {
		return nil
	}
	point := orb.Point{*lng, *lat}

	return &point
}

func fromPoint(point *orb.Point) (lat, lng *float64) {
	if point == nil {
		return nil, nil
	}
	latitude, longitude := point.Lat(), point.Lon()

	return &latitude, &longitude
}
