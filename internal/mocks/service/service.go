// Package service provides testify mocks of the domain collaborators.
package service

import (
	"context"

	"kasa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockIdentityProvider mocks service.IdentityProvider.
type MockIdentityProvider struct{ mock.Mock }

func NewMockIdentityProvider(t cleanupT) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityProvider) CreateIdentity(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(*service.ProviderIdentity)

	return identity, args.Error(1)
}

func (m *MockIdentityProvider) ConfirmIdentity(ctx context.Context, token string) (*service.ProviderIdentity, error) {
	args := m.Called(ctx, token)
	identity, _ := args.Get(0).(*service.ProviderIdentity)

	return identity, args.Error(1)
}

func (m *MockIdentityProvider) VerifyCredentials(ctx context.Context, email, password string) (*service.ProviderSession, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*service.ProviderSession)

	return session, args.Error(1)
}

func (m *MockIdentityProvider) InvalidateSession(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

func (m *MockIdentityProvider) ValidateSession(ctx context.Context, accessToken string) (uuid.UUID, error) {
	args := m.Called(ctx, accessToken)
	id, _ := args.Get(0).(uuid.UUID)

	return id, args.Error(1)
}

// MockObjectStore mocks service.ObjectStore.
type MockObjectStore struct{ mock.Mock }

func NewMockObjectStore(t cleanupT) *MockObjectStore {
	m := &MockObjectStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockObjectStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	return m.Called(ctx, path, data, contentType).Error(0)
}

func (m *MockObjectStore) PublicURL(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)

	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Download(ctx context.Context, path string) (*service.StoredObject, error) {
	args := m.Called(ctx, path)
	obj, _ := args.Get(0).(*service.StoredObject)

	return obj, args.Error(1)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct{ mock.Mock }

func NewMockQRCodeService(t cleanupT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateVerificationQR(url string) ([]byte, error) {
	args := m.Called(url)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}
