package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is whether a recorded rent payment was settled.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentUnpaid
}

// Label returns the wording printed on receipts.
func (s PaymentStatus) Label() string {
	if s == PaymentPaid {
		return "Payé"
	}

	return "Impayé"
}

// Payment is a recorded rent payment. It is never updated after creation.
type Payment struct {
	ID         uuid.UUID     `json:"id"`
	OwnerID    uuid.UUID     `json:"proprietaire_id"`
	PropertyID uuid.UUID     `json:"bien_id"`
	ContractID *uuid.UUID    `json:"contrat_id,omitempty"`
	TenantName string        `json:"locataire"`
	Month      string        `json:"mois"`
	Year       int           `json:"annee"`
	Amount     int64         `json:"montant"`
	Status     PaymentStatus `json:"statut"`
	ReceiptURL string        `json:"quittance_url"`
	CreatedAt  time.Time     `json:"created_at"`
}
