package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kasa/config"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/repository"
	"kasa/internal/domain/service"
	"kasa/internal/errors"
	"kasa/internal/usecase"
	"kasa/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const warningPaymentNotSaved = "Quittance enregistrée, mais le paiement n'a pas pu être sauvegardé : "

// PaymentServiceParams defines the dependencies of the payment service.
type PaymentServiceParams struct {
	fx.In

	Config     *config.Config
	Properties repository.PropertyRepository
	Contracts  repository.ContractRepository
	Payments   repository.PaymentRepository
	Documents  service.DocumentGenerator
	Store      service.ObjectStore
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	verification config.VerificationConfig
	properties   repository.PropertyRepository
	contracts    repository.ContractRepository
	payments     repository.PaymentRepository
	documents    service.DocumentGenerator
	store        service.ObjectStore
	qrcode       service.QRCodeService
	logger       *slog.Logger
	now          func() time.Time
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		verification: params.Config.Document.Verification,
		properties:   params.Properties,
		contracts:    params.Contracts,
		payments:     params.Payments,
		documents:    params.Documents,
		store:        params.Store,
		qrcode:       params.QRCode,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPayment runs generate, upload, insert in that order. An insert failure after
// the upload leaves the receipt in place and is returned as a warning.
func (srv *paymentService) RecordPayment(ctx context.Context, owner *entity.Identity, input *usecase.RecordPaymentInput) (*usecase.RecordPaymentResult, error) {
	receipt, err := srv.buildReceipt(ctx, owner, input, true)
	if err != nil {
		return nil, err
	}

	path := objectPath(owner.ID, receipt.Filename)
	if err := srv.store.Upload(ctx, path, receipt.Data, pdfContentType); err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorObjectStore, err), "upload receipt")
	}

	receiptURL, err := srv.store.PublicURL(ctx, path)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorObjectStore, err), "receipt url")
	}

	payment := &entity.Payment{
		OwnerID:    owner.ID,
		PropertyID: input.PropertyID,
		ContractID: input.ContractID,
		TenantName: strings.TrimSpace(input.TenantName),
		Month:      strings.TrimSpace(input.Month),
		Year:       input.Year,
		Amount:     input.Amount,
		Status:     input.Status,
		ReceiptURL: receiptURL,
	}

	if err := srv.payments.Create(ctx, payment); err != nil {
		srv.log(ctx).Warn("Receipt stored but payment insert failed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return &usecase.RecordPaymentResult{
			Payment: payment,
			Warning: warningPaymentNotSaved + messageOf(err),
		}, nil
	}

	srv.log(ctx).Info("Payment recorded",
		slog.Any("payment_id", payment.ID),
		slog.String("path", path),
		slog.String("size", util.FormatBytes(int64(len(receipt.Data)))),
	)

	return &usecase.RecordPaymentResult{Payment: payment}, nil
}

func (srv *paymentService) ListPayments(ctx context.Context, ownerID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.payments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list payments")
	}

	return payments, nil
}

func (srv *paymentService) PreviewReceipt(ctx context.Context, owner *entity.Identity, input *usecase.RecordPaymentInput) (*usecase.GeneratedDocument, error) {
	return srv.buildReceipt(ctx, owner, input, false)
}

func (srv *paymentService) buildReceipt(ctx context.Context, owner *entity.Identity, input *usecase.RecordPaymentInput, stamped bool) (*usecase.GeneratedDocument, error) {
	if err := validatePayment(input); err != nil {
		return nil, err
	}

	property, err := findProperty(ctx, srv.properties, owner.ID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if input.ContractID != nil {
		if err := srv.checkContract(ctx, owner.ID, *input.ContractID, property.ID); err != nil {
			return nil, err
		}
	}

	tenant := strings.TrimSpace(input.TenantName)
	month := strings.TrimSpace(input.Month)

	body, err := srv.documents.ReceiptBody(&service.ReceiptData{
		OwnerName:       displayName(owner),
		PropertyName:    property.Name,
		PropertyAddress: property.Address,
		TenantName:      tenant,
		Month:           month,
		Year:            input.Year,
		Amount:          input.Amount,
		StatusLabel:     input.Status.Label(),
		IssuedOn:        srv.now(),
	})
	if err != nil {
		return nil, err
	}

	filename := entity.ReceiptFilename(month, input.Year, tenant)
	doc := &service.Document{Title: entity.ReceiptTitle, Body: body}

	if stamped && srv.verification.Enabled && srv.verification.BaseURL != "" {
		verifyURL := strings.TrimRight(srv.verification.BaseURL, "/") + usecase.ReceiptVerificationPrefix + objectPath(owner.ID, filename)
		stamp, err := srv.qrcode.GenerateVerificationQR(verifyURL)
		if err != nil {
			return nil, domainerrors.ErrEncoding.WithDetails(err.Error())
		}
		doc.Stamp = stamp
	}

	data, err := srv.documents.Render(doc)
	if err != nil {
		return nil, err
	}

	return &usecase.GeneratedDocument{Filename: filename, Data: data}, nil
}

// checkContract accepts only a contract of the same owner, signed for the paid property.
func (srv *paymentService) checkContract(ctx context.Context, ownerID, contractID, propertyID uuid.UUID) error {
	contract, err := srv.contracts.FindByID(ctx, ownerID, contractID)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return domainerrors.ErrContractNotFound
		}

		return errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "find contract")
	}

	if contract.PropertyID != propertyID {
		return domainerrors.ErrValidationFailed.WithDetails("contrat_id does not cover bien_id")
	}

	return nil
}

func validatePayment(input *usecase.RecordPaymentInput) error {
	if input.PropertyID == uuid.Nil || blank(input.TenantName, input.Month) {
		return domainerrors.ErrValidationFailed
	}
	if input.Year <= 0 || input.Amount <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("year and amount must be positive")
	}
	if !input.Status.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment status " + string(input.Status))
	}

	return nil
}

// messageOf returns the user-facing message of an application error, or its text.
func messageOf(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
