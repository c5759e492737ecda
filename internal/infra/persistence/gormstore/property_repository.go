package gormstore

import (
	"context"

	"kasa/internal/domain/entity"
	"kasa/internal/domain/repository"
	"kasa/internal/errors"
	"kasa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// propertyRepository implements repository.PropertyRepository. Every query is scoped to the owner.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		return storeError(err, "failed to create property")
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt

	return nil
}

func (repo *propertyRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND proprietaire_id = ?", id, ownerID).
		Take(&propertyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, storeError(err, "failed to find property")
	}

	return toPropertyDomain(&propertyM), nil
}

func (repo *propertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	var propertyMs []*model.PropertyModel
	err := repo.db.WithContext(ctx).
		Where("proprietaire_id = ?", ownerID).
		Order("created_at DESC").
		Find(&propertyMs).Error
	if err != nil {
		return nil, storeError(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(propertyMs))
	for _, propertyM := range propertyMs {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

func (repo *propertyRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND proprietaire_id = ?", id, ownerID).
		Delete(&model.PropertyModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return storeError(result.Error, "property is still referenced")
		}

		return storeError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

func fromPropertyDomain(property *entity.Property) *model.PropertyModel {
	return &model.PropertyModel{
		ID:          property.ID,
		OwnerID:     property.OwnerID,
		Name:        property.Name,
		Address:     property.Address,
		Area:        property.Area,
		RoomCounts:  property.RoomCounts,
		MonthlyRent: property.MonthlyRent,
	}
}

func toPropertyDomain(propertyM *model.PropertyModel) *entity.Property {
	return &entity.Property{
		ID:          propertyM.ID,
		OwnerID:     propertyM.OwnerID,
		Name:        propertyM.Name,
		Address:     propertyM.Address,
		Area:        propertyM.Area,
		RoomCounts:  propertyM.RoomCounts,
		MonthlyRent: propertyM.MonthlyRent,
		CreatedAt:   propertyM.CreatedAt,
	}
}
