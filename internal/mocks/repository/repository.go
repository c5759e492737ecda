// Package repository provides testify mocks of the domain repositories.
package repository

import (
	"context"

	"kasa/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// cleanupT is the part of testing.T the constructors need.
type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct{ mock.Mock }

func NewMockProfileRepository(t cleanupT) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*entity.Profile)

	return profile, args.Error(1)
}

// MockPropertyRepository mocks repository.PropertyRepository.
type MockPropertyRepository struct{ mock.Mock }

func NewMockPropertyRepository(t cleanupT) *MockPropertyRepository {
	m := &MockPropertyRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Property, error) {
	args := m.Called(ctx, ownerID, id)
	property, _ := args.Get(0).(*entity.Property)

	return property, args.Error(1)
}

func (m *MockPropertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	args := m.Called(ctx, ownerID)
	properties, _ := args.Get(0).([]*entity.Property)

	return properties, args.Error(1)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

// MockPaymentRepository mocks repository.PaymentRepository.
type MockPaymentRepository struct{ mock.Mock }

func NewMockPaymentRepository(t cleanupT) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Payment, error) {
	args := m.Called(ctx, ownerID)
	payments, _ := args.Get(0).([]*entity.Payment)

	return payments, args.Error(1)
}

// MockContractRepository mocks repository.ContractRepository.
type MockContractRepository struct{ mock.Mock }

func NewMockContractRepository(t cleanupT) *MockContractRepository {
	m := &MockContractRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockContractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

func (m *MockContractRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contract, error) {
	args := m.Called(ctx, ownerID, id)
	contract, _ := args.Get(0).(*entity.Contract)

	return contract, args.Error(1)
}

func (m *MockContractRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contract, error) {
	args := m.Called(ctx, ownerID)
	contracts, _ := args.Get(0).([]*entity.Contract)

	return contracts, args.Error(1)
}

// MockTenantRepository mocks repository.TenantRepository.
type MockTenantRepository struct{ mock.Mock }

func NewMockTenantRepository(t cleanupT) *MockTenantRepository {
	m := &MockTenantRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTenantRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Tenant, error) {
	args := m.Called(ctx, ownerID, name)
	tenant, _ := args.Get(0).(*entity.Tenant)

	return tenant, args.Error(1)
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tenant, error) {
	args := m.Called(ctx, ownerID)
	tenants, _ := args.Get(0).([]*entity.Tenant)

	return tenants, args.Error(1)
}
