package impl

import (
	"context"

	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/repository"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DashboardServiceParams defines the repositories the dashboard reads.
type DashboardServiceParams struct {
	fx.In

	Properties repository.PropertyRepository
	Payments   repository.PaymentRepository
	Contracts  repository.ContractRepository
	Tenants    repository.TenantRepository
}

type dashboardService struct {
	properties repository.PropertyRepository
	payments   repository.PaymentRepository
	contracts  repository.ContractRepository
	tenants    repository.TenantRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		properties: params.Properties,
		payments:   params.Payments,
		contracts:  params.Contracts,
		tenants:    params.Tenants,
	}
}

func (srv *dashboardService) Dashboard(ctx context.Context, ownerID uuid.UUID) (*usecase.DashboardSummary, error) {
	properties, err := srv.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list properties")
	}
	payments, err := srv.payments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list payments")
	}
	contracts, err := srv.contracts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list contracts")
	}
	tenants, err := srv.tenants.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list tenants")
	}

	summary := &usecase.DashboardSummary{
		PropertyCount: len(properties),
		ContractCount: len(contracts),
		TenantCount:   len(tenants),
	}
	for _, property := range properties {
		summary.TotalMonthlyRent += property.MonthlyRent
	}
	for _, payment := range payments {
		switch payment.Status {
		case entity.PaymentPaid:
			summary.PaidCount++
			summary.AmountCollected += payment.Amount
		case entity.PaymentUnpaid:
			summary.UnpaidCount++
		}
	}

	return summary, nil
}
