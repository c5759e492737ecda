package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DashboardUsecase summarizes an owner's portfolio.
type DashboardUsecase interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*DashboardSummary, error)
}

// DashboardSummary holds the App page counters.
type DashboardSummary struct {
	PropertyCount    int   `json:"nombre_biens"`
	TotalMonthlyRent int64 `json:"loyers_mensuels"`
	ContractCount    int   `json:"nombre_contrats"`
	TenantCount      int   `json:"nombre_locataires"`
	PaidCount        int   `json:"paiements_payes"`
	UnpaidCount      int   `json:"paiements_impayes"`
	AmountCollected  int64 `json:"montant_encaisse"`
}

