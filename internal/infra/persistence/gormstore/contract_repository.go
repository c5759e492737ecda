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

// contractRepository implements repository.ContractRepository.
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository is the constructor for contractRepository.
func NewContractRepository(db *gorm.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (repo *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	contractM := &model.ContractModel{
		ID:          contract.ID,
		OwnerID:     contract.OwnerID,
		PropertyID:  contract.PropertyID,
		TenantID:    contract.TenantID,
		StartDate:   contract.StartDate,
		EndDate:     contract.EndDate,
		MonthlyRent: contract.MonthlyRent,
		Deposit:     contract.Deposit,
		PaymentMode: contract.PaymentMode,
		DocumentURL: contract.DocumentURL,
	}

	if err := repo.db.WithContext(ctx).Create(contractM).Error; err != nil {
		return storeError(err, "failed to create contract")
	}

	contract.ID = contractM.ID
	contract.CreatedAt = contractM.CreatedAt

	return nil
}

func (repo *contractRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contract, error) {
	var contractMs []*model.ContractModel
	err := repo.db.WithContext(ctx).
		Where("proprietaire_id = ?", ownerID).
		Order("date_debut DESC").
		Find(&contractMs).Error
	if err != nil {
		return nil, storeError(err, "failed to list contracts")
	}

	contracts := make([]*entity.Contract, 0, len(contractMs))
	for _, contractM := range contractMs {
		contracts = append(contracts, toContractDomain(contractM))
	}

	return contracts, nil
}

func (repo *contractRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contract, error) {
	var contractM model.ContractModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND proprietaire_id = ?", id, ownerID).
		Take(&contractM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContractNotFound
		}

		return nil, storeError(err, "failed to find contract")
	}

	return toContractDomain(&contractM), nil
}

func toContractDomain(contractM *model.ContractModel) *entity.Contract {
	return &entity.Contract{
		ID:          contractM.ID,
		OwnerID:     contractM.OwnerID,
		PropertyID:  contractM.PropertyID,
		TenantID:    contractM.TenantID,
		StartDate:   contractM.StartDate,
		EndDate:     contractM.EndDate,
		MonthlyRent: contractM.MonthlyRent,
		Deposit:     contractM.Deposit,
		PaymentMode: contractM.PaymentMode,
		DocumentURL: contractM.DocumentURL,
		CreatedAt:   contractM.CreatedAt,
	}
}

// tenantRepository implements repository.TenantRepository.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (repo *tenantRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Tenant, error) {
	var tenantM model.TenantModel
	err := repo.db.WithContext(ctx).
		Where("proprietaire_id = ? AND nom = ?", ownerID, name).
		Take(&tenantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, storeError(err, "failed to find tenant")
	}

	return toTenantDomain(&tenantM), nil
}

func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := &model.TenantModel{
		ID:      tenant.ID,
		OwnerID: tenant.OwnerID,
		Name:    tenant.Name,
		Email:   tenant.Email,
		Phone:   tenant.Phone,
	}

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		return storeError(err, "failed to create tenant")
	}

	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt

	return nil
}

func (repo *tenantRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tenant, error) {
	var tenantMs []*model.TenantModel
	err := repo.db.WithContext(ctx).
		Where("proprietaire_id = ?", ownerID).
		Order("nom ASC").
		Find(&tenantMs).Error
	if err != nil {
		return nil, storeError(err, "failed to list tenants")
	}

	tenants := make([]*entity.Tenant, 0, len(tenantMs))
	for _, tenantM := range tenantMs {
		tenants = append(tenants, toTenantDomain(tenantM))
	}

	return tenants, nil
}

func toTenantDomain(tenantM *model.TenantModel) *entity.Tenant {
	return &entity.Tenant{
		ID:        tenantM.ID,
		OwnerID:   tenantM.OwnerID,
		Name:      tenantM.Name,
		Email:     tenantM.Email,
		Phone:     tenantM.Phone,
		CreatedAt: tenantM.CreatedAt,
	}
}
