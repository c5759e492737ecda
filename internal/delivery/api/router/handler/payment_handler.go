package handler

import (
	"log/slog"
	"net/http"

	"kasa/internal/delivery/api/response"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pdfContentType = "application/pdf"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment recording and receipts (quittances).
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PaymentRequest represents a payment entry, used for recording and for previews.
type PaymentRequest struct {
	PropertyID uuid.UUID  `json:"bien_id" validate:"required"`
	ContractID *uuid.UUID `json:"contrat_id,omitempty"`
	TenantName string     `json:"locataire" validate:"required"`
	Month      string     `json:"mois" validate:"required"`
	Year       int        `json:"annee" validate:"gt=0"`
	Amount     int64      `json:"montant" validate:"gt=0"`
	Status     string     `json:"statut" validate:"required,oneof=paid unpaid"`
}

func (r *PaymentRequest) input() *usecase.RecordPaymentInput {
	return &usecase.RecordPaymentInput{
		PropertyID: r.PropertyID,
		ContractID: r.ContractID,
		TenantName: r.TenantName,
		Month:      r.Month,
		Year:       r.Year,
		Amount:     r.Amount,
		Status:     entity.PaymentStatus(r.Status),
	}
}

// PaymentView is a recorded payment and the warning raised when only the receipt was kept.
type PaymentView struct {
	Payment *entity.Payment `json:"paiement"`
	Warning string          `json:"avertissement,omitempty"`
}

// RecordPayment stores the receipt and the payment.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.RecordPayment(c.Request().Context(), deliverycontext.GetSession(c).Identity, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, PaymentView{Payment: result.Payment, Warning: result.Warning})
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentUC.ListPayments(c.Request().Context(), deliverycontext.GetSession(c).OwnerID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments)
}

// PreviewReceipt returns the receipt PDF without recording anything.
func (h *PaymentHandler) PreviewReceipt(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	doc, err := h.paymentUC.PreviewReceipt(c.Request().Context(), deliverycontext.GetSession(c).Identity, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, doc.Filename, pdfContentType, doc.Data)
}
