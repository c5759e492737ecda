package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

const warningContractNotSaved = "Contrat enregistré, mais il n'a pas pu être sauvegardé dans la base : "

// ContractServiceParams defines the dependencies of the contract service.
type ContractServiceParams struct {
	fx.In

	Properties repository.PropertyRepository
	Contracts  repository.ContractRepository
	Tenants    repository.TenantRepository
	Documents  service.DocumentGenerator
	Store      service.ObjectStore
	Logger     *slog.Logger
}

// contractService implements the ContractUsecase interface.
type contractService struct {
	properties repository.PropertyRepository
	contracts  repository.ContractRepository
	tenants    repository.TenantRepository
	documents  service.DocumentGenerator
	store      service.ObjectStore
	logger     *slog.Logger
	now        func() time.Time
}

// NewContractService is the constructor for contractService.
func NewContractService(params ContractServiceParams) usecase.ContractUsecase {
	return &contractService{
		properties: params.Properties,
		contracts:  params.Contracts,
		tenants:    params.Tenants,
		documents:  params.Documents,
		store:      params.Store,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *contractService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateContract follows the receipt pipeline: tenant lookup-or-insert, generate,
// upload, insert. A failed insert after the upload is reported as a warning.
func (srv *contractService) CreateContract(ctx context.Context, owner *entity.Identity, input *usecase.CreateContractInput) (*usecase.CreateContractResult, error) {
	if err := validateContract(input); err != nil {
		return nil, err
	}

	property, err := findProperty(ctx, srv.properties, owner.ID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	tenant, err := srv.findOrCreateTenant(ctx, owner.ID, input)
	if err != nil {
		return nil, err
	}

	rent := input.MonthlyRent
	if rent <= 0 {
		rent = property.MonthlyRent
	}

	body, err := srv.documents.ContractBody(&service.ContractData{
		OwnerName:       displayName(owner),
		PropertyName:    property.Name,
		PropertyAddress: property.Address,
		Area:            property.Area,
		RoomCounts:      property.RoomCounts,
		TenantName:      tenant.Name,
		TenantEmail:     tenant.Email,
		TenantPhone:     tenant.Phone,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MonthlyRent:     rent,
		Deposit:         input.Deposit,
		PaymentMode:     strings.TrimSpace(input.PaymentMode),
		IssuedOn:        srv.now(),
	})
	if err != nil {
		return nil, err
	}

	data, err := srv.documents.Render(&service.Document{Title: entity.ContractTitle, Body: body})
	if err != nil {
		return nil, err
	}

	path := objectPath(owner.ID, entity.ContractFilename(tenant.Name, input.StartDate))
	if err := srv.store.Upload(ctx, path, data, pdfContentType); err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorObjectStore, err), "upload contract")
	}

	documentURL, err := srv.store.PublicURL(ctx, path)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorObjectStore, err), "contract url")
	}

	contract := &entity.Contract{
		OwnerID:     owner.ID,
		PropertyID:  property.ID,
		TenantID:    &tenant.ID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MonthlyRent: rent,
		Deposit:     input.Deposit,
		PaymentMode: strings.TrimSpace(input.PaymentMode),
		DocumentURL: documentURL,
	}

	if err := srv.contracts.Create(ctx, contract); err != nil {
		srv.log(ctx).Warn("Contract stored but insert failed", slog.String("path", path), slog.Any("error", err))

		return &usecase.CreateContractResult{
			Contract: contract,
			Tenant:   tenant,
			Warning:  warningContractNotSaved + messageOf(err),
		}, nil
	}

	srv.log(ctx).Info("Contract created",
		slog.Any("contract_id", contract.ID),
		slog.String("path", path),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return &usecase.CreateContractResult{Contract: contract, Tenant: tenant}, nil
}

func (srv *contractService) findOrCreateTenant(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateContractInput) (*entity.Tenant, error) {
	name := strings.TrimSpace(input.TenantName)

	tenant, err := srv.tenants.FindByName(ctx, ownerID, name)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, repository.ErrTenantNotFound) {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "find tenant")
	}

	tenant = &entity.Tenant{
		OwnerID: ownerID,
		Name:    name,
		Email:   strings.TrimSpace(input.TenantEmail),
		Phone:   strings.TrimSpace(input.TenantPhone),
	}
	if err := srv.tenants.Create(ctx, tenant); err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "create tenant")
	}

	srv.log(ctx).Info("Tenant created", slog.Any("tenant_id", tenant.ID))

	return tenant, nil
}

func (srv *contractService) ListContracts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contract, error) {
	contracts, err := srv.contracts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list contracts")
	}

	return contracts, nil
}

func (srv *contractService) ListTenants(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tenant, error) {
	tenants, err := srv.tenants.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list tenants")
	}

	return tenants, nil
}

func validateContract(input *usecase.CreateContractInput) error {
	if input.PropertyID == uuid.Nil || blank(input.TenantName, input.PaymentMode) {
		return domainerrors.ErrValidationFailed
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("start and end dates are required")
	}
	if !input.EndDate.After(input.StartDate) {
		return domainerrors.ErrValidationFailed.WithDetails("end date must be after start date")
	}
	if input.Deposit < 0 || input.MonthlyRent < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amounts must not be negative")
	}

	return nil
}
