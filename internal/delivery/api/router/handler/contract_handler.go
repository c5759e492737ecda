package handler

import (
	"log/slog"
	"net/http"
	"time"

	"kasa/internal/delivery/api/response"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContractHandlerParams holds dependencies for ContractHandler, injected by Fx.
type ContractHandlerParams struct {
	fx.In

	ContractUC usecase.ContractUsecase
	Logger     *slog.Logger
}

// ContractHandler serves leases and the tenant list.
type ContractHandler struct {
	contractUC usecase.ContractUsecase
	logger     *slog.Logger
}

// NewContractHandler is the constructor for ContractHandler
func NewContractHandler(params ContractHandlerParams) *ContractHandler {
	return &ContractHandler{
		contractUC: params.ContractUC,
		logger:     params.Logger,
	}
}

// CreateContractRequest represents the lease form. Dates are YYYY-MM-DD.
type CreateContractRequest struct {
	PropertyID  uuid.UUID `json:"bien_id"`
	TenantName  string    `json:"locataire" validate:"required"`
	TenantEmail string    `json:"email" validate:"omitempty,email"`
	TenantPhone string    `json:"telephone"`
	StartDate   string    `json:"date_debut" validate:"required,datetime=2006-01-02"`
	EndDate     string    `json:"date_fin" validate:"required,datetime=2006-01-02"`
	MonthlyRent int64     `json:"loyer_mensuel" validate:"gte=0"`
	Deposit     int64     `json:"caution" validate:"gte=0"`
	PaymentMode string    `json:"mode_paiement" validate:"required"`
}

// ContractView is a created lease, its tenant and the warning raised when only the document was kept.
type ContractView struct {
	Contract *entity.Contract `json:"contrat"`
	Tenant   *entity.Tenant   `json:"locataire"`
	Warning  string           `json:"avertissement,omitempty"`
}

// CreateContract generates and stores a lease.
func (h *ContractHandler) CreateContract(c echo.Context) error {
	var req CreateContractRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	// Both dates passed the datetime validator.
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	result, err := h.contractUC.CreateContract(c.Request().Context(), deliverycontext.GetSession(c).Identity, &usecase.CreateContractInput{
		PropertyID:  req.PropertyID,
		TenantName:  req.TenantName,
		TenantEmail: req.TenantEmail,
		TenantPhone: req.TenantPhone,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
		PaymentMode: req.PaymentMode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ContractView{
		Contract: result.Contract,
		Tenant:   result.Tenant,
		Warning:  result.Warning,
	})
}

func (h *ContractHandler) ListContracts(c echo.Context) error {
	contracts, err := h.contractUC.ListContracts(c.Request().Context(), deliverycontext.GetSession(c).OwnerID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contracts)
}

func (h *ContractHandler) ListTenants(c echo.Context) error {
	tenants, err := h.contractUC.ListTenants(c.Request().Context(), deliverycontext.GetSession(c).OwnerID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenants)
}
