package usecase

import (
	"context"

	"kasa/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase records rent payments and issues their receipts (quittances).
type PaymentUsecase interface {
	// RecordPayment generates the receipt, stores it, then inserts the payment.
	RecordPayment(ctx context.Context, owner *entity.Identity, input *RecordPaymentInput) (*RecordPaymentResult, error)
	ListPayments(ctx context.Context, ownerID uuid.UUID) ([]*entity.Payment, error)
	// PreviewReceipt renders the receipt without storing anything.
	PreviewReceipt(ctx context.Context, owner *entity.Identity, input *RecordPaymentInput) (*GeneratedDocument, error)
}

// RecordPaymentInput defines a payment entry.
type RecordPaymentInput struct {
	PropertyID uuid.UUID            `json:"bien_id"`
	ContractID *uuid.UUID           `json:"contrat_id,omitempty"`
	TenantName string               `json:"locataire"`
	Month      string               `json:"mois"`
	Year       int                  `json:"annee"`
	Amount     int64                `json:"montant"`
	Status     entity.PaymentStatus `json:"statut"`
}

// RecordPaymentResult is the payment with its receipt URL. Warning is set when the receipt
// was stored but the payment record could not be inserted; Payment.ID is then uuid.Nil.
type RecordPaymentResult struct {
	Payment *entity.Payment
	Warning string
}

// GeneratedDocument is a rendered PDF and its storage-safe filename.
type GeneratedDocument struct {
	Filename string
	Data     []byte
}
