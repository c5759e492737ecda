package impl

import (
	"context"
	"testing"

	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	mockRepo "kasa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Dashboard(t *testing.T) {
	properties := mockRepo.NewMockPropertyRepository(t)
	payments := mockRepo.NewMockPaymentRepository(t)
	contracts := mockRepo.NewMockContractRepository(t)
	tenants := mockRepo.NewMockTenantRepository(t)
	svc := NewDashboardService(DashboardServiceParams{
		Properties: properties,
		Payments:   payments,
		Contracts:  contracts,
		Tenants:    tenants,
	})
	ownerID := uuid.New()

	properties.On("ListByOwner", mock.Anything, ownerID).Return([]*entity.Property{
		{MonthlyRent: 50000}, {MonthlyRent: 75000},
	}, nil)
	payments.On("ListByOwner", mock.Anything, ownerID).Return([]*entity.Payment{
		{Status: entity.PaymentPaid, Amount: 50000},
		{Status: entity.PaymentPaid, Amount: 75000},
		{Status: entity.PaymentUnpaid, Amount: 50000},
	}, nil)
	contracts.On("ListByOwner", mock.Anything, ownerID).Return([]*entity.Contract{{}}, nil)
	tenants.On("ListByOwner", mock.Anything, ownerID).Return([]*entity.Tenant{{}, {}}, nil)

	summary, err := svc.Dashboard(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.PropertyCount)
	assert.Equal(t, int64(125000), summary.TotalMonthlyRent)
	assert.Equal(t, 1, summary.ContractCount)
	assert.Equal(t, 2, summary.TenantCount)
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, 1, summary.UnpaidCount)
	assert.Equal(t, int64(125000), summary.AmountCollected)
}

func TestDashboardService_Dashboard_StoreFailure(t *testing.T) {
	properties := mockRepo.NewMockPropertyRepository(t)
	svc := NewDashboardService(DashboardServiceParams{
		Properties: properties,
		Payments:   mockRepo.NewMockPaymentRepository(t),
		Contracts:  mockRepo.NewMockContractRepository(t),
		Tenants:    mockRepo.NewMockTenantRepository(t),
	})
	ownerID := uuid.New()

	properties.On("ListByOwner", mock.Anything, ownerID).Return(nil, errors.New("connection reset"))

	_, err := svc.Dashboard(context.Background(), ownerID)
	assert.Equal(t, domainerrors.KindCollaborator, domainerrors.KindOf(err))
}
