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

// profileRepository implements repository.ProfileRepository.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		ID:     profile.ID,
		Nom:    profile.Name,
		Prenom: profile.Surname,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return storeError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, storeError(err, "failed to find profile")
	}

	return &entity.Profile{
		ID:        profileM.ID,
		Name:      profileM.Nom,
		Surname:   profileM.Prenom,
		CreatedAt: profileM.CreatedAt,
	}, nil
}
