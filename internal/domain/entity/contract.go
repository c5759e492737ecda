package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contract is a lease generated for a property. It is never updated after creation.
type Contract struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"proprietaire_id"`
	PropertyID  uuid.UUID  `json:"bien_id"`
	TenantID    *uuid.UUID `json:"locataire_id,omitempty"`
	StartDate   time.Time  `json:"date_debut"`
	EndDate     time.Time  `json:"date_fin"`
	MonthlyRent int64      `json:"loyer_mensuel"`
	Deposit     int64      `json:"caution"`
	PaymentMode string     `json:"mode_paiement"`
	DocumentURL string     `json:"document_url"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Tenant is a renter known to an owner, created on first contract.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"proprietaire_id"`
	Name      string    `json:"nom"`
	Email     string    `json:"email"`
	Phone     string    `json:"telephone"`
	CreatedAt time.Time `json:"created_at"`
}
