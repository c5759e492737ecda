package gormstore

import (
	"context"

	"kasa/internal/domain/entity"
	"kasa/internal/domain/repository"
	"kasa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paymentRepository implements repository.PaymentRepository.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:         payment.ID,
		OwnerID:    payment.OwnerID,
		PropertyID: payment.PropertyID,
		ContractID: payment.ContractID,
		TenantName: payment.TenantName,
		Month:      payment.Month,
		Year:       payment.Year,
		Amount:     payment.Amount,
		Status:     string(payment.Status),
		ReceiptURL: payment.ReceiptURL,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return storeError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

func (repo *paymentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("proprietaire_id = ?", ownerID).
		Order("annee DESC").
		Order("created_at DESC").
		Find(&paymentMs).Error
	if err != nil {
		return nil, storeError(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for _, paymentM := range paymentMs {
		payments = append(payments, &entity.Payment{
			ID:         paymentM.ID,
			OwnerID:    paymentM.OwnerID,
			PropertyID: paymentM.PropertyID,
			ContractID: paymentM.ContractID,
			TenantName: paymentM.TenantName,
			Month:      paymentM.Month,
			Year:       paymentM.Year,
			Amount:     paymentM.Amount,
			Status:     entity.PaymentStatus(paymentM.Status),
			ReceiptURL: paymentM.ReceiptURL,
			CreatedAt:  paymentM.CreatedAt,
		})
	}

	return payments, nil
}
