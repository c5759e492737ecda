// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kasa/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrContractNotFound   = errors.New("contract not found")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrCredentialExists   = errors.New("credential already exists")
)

// ProfileRepository stores the profile record keyed by the provider-issued identity id.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}

// PropertyRepository stores an owner's properties. Every lookup is owner-scoped.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Property, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// PaymentRepository stores payment records. Payments are insert-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Payment, error)
}

// ContractRepository stores contracts. Contracts are insert-only.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contract, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contract, error)
}

// TenantRepository stores tenants, looked up by name within an owner.
type TenantRepository interface {
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Tenant, error)
	Create(ctx context.Context, tenant *entity.Tenant) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tenant, error)
}

// CredentialRepository backs the built-in identity provider.
type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	// Confirm marks a credential as confirmed. Confirming twice succeeds.
	Confirm(ctx context.Context, id uuid.UUID) error

	// RevokeToken records a provider session token id as invalidated.
	RevokeToken(ctx context.Context, tokenID string) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
