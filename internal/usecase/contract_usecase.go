package usecase

import (
	"context"
	"time"

	"kasa/internal/domain/entity"

	"github.com/google/uuid"
)

// ContractUsecase generates leases and keeps the tenant list.
type ContractUsecase interface {
	CreateContract(ctx context.Context, owner *entity.Identity, input *CreateContractInput) (*CreateContractResult, error)
	ListContracts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contract, error)
	ListTenants(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tenant, error)
}

// CreateContractInput defines a lease. MonthlyRent defaults to the property's rent when zero.
type CreateContractInput struct {
	PropertyID  uuid.UUID `json:"bien_id"`
	TenantName  string    `json:"locataire"`
	TenantEmail string    `json:"email"`
	TenantPhone string    `json:"telephone"`
	StartDate   time.Time `json:"date_debut"`
	EndDate     time.Time `json:"date_fin"`
	MonthlyRent int64     `json:"loyer_mensuel"`
	Deposit     int64     `json:"caution"`
	PaymentMode string    `json:"mode_paiement"`
}

// CreateContractResult mirrors RecordPaymentResult for leases.
type CreateContractResult struct {
	Contract *entity.Contract
	Tenant   *entity.Tenant
	Warning  string
}
