package gormstore

import (
	"context"
	"strings"
	"time"

	"kasa/internal/domain/entity"
	"kasa/internal/domain/repository"
	"kasa/internal/errors"
	"kasa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements repository.CredentialRepository.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create stores a credential. E-mails are compared case-insensitively.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := &model.CredentialModel{
		ID:           credential.ID,
		Email:        normalizeEmail(credential.Email),
		PasswordHash: credential.PasswordHash,
		Confirmed:    credential.Confirmed,
	}

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCredentialExists
		}

		return storeError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.Email = credentialM.Email
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		Take(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, storeError(err, "failed to find credential")
	}

	return &entity.Credential{
		ID:           credentialM.ID,
		Email:        credentialM.Email,
		PasswordHash: credentialM.PasswordHash,
		Confirmed:    credentialM.Confirmed,
		CreatedAt:    credentialM.CreatedAt,
	}, nil
}

func (repo *credentialRepository) Confirm(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Update("confirmed", true)
	if result.Error != nil {
		return storeError(result.Error, "failed to confirm credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// RevokeToken is idempotent: revoking an already revoked token succeeds.
func (repo *credentialRepository) RevokeToken(ctx context.Context, tokenID string) error {
	revoked := &model.RevokedTokenModel{TokenID: tokenID, RevokedAt: time.Now()}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(revoked).Error
	if err != nil {
		return storeError(err, "failed to revoke token")
	}

	return nil
}

func (repo *credentialRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RevokedTokenModel{}).
		Where("token_id = ?", tokenID).
		Count(&count).Error
	if err != nil {
		return false, storeError(err, "failed to check revoked token")
	}

	return count > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
