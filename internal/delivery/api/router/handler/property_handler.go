package handler

import (
	"log/slog"
	"net/http"

	"kasa/internal/delivery/api/response"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PropertyHandler holds dependencies for property (bien) handlers
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// CreatePropertyRequest represents the property (bien) form.
type CreatePropertyRequest struct {
	Name        string  `json:"nom" validate:"required"`
	Address     string  `json:"adresse" validate:"required"`
	Area        float64 `json:"superficie" validate:"gte=0"`
	RoomCounts  int     `json:"nombre_pieces" validate:"gte=0"`
	MonthlyRent int64   `json:"loyer_mensuel" validate:"gt=0"`
}

// CreateProperty registers a property for the signed-in owner.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	property, err := h.propertyUC.CreateProperty(c.Request().Context(), deliverycontext.GetSession(c).OwnerID(), &usecase.CreatePropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		Area:        req.Area,
		RoomCounts:  req.RoomCounts,
		MonthlyRent: req.MonthlyRent,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	properties, err := h.propertyUC.ListProperties(c.Request().Context(), deliverycontext.GetSession(c).OwnerID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Identifiant de bien invalide.")
	}

	if err := h.propertyUC.DeleteProperty(c.Request().Context(), deliverycontext.GetSession(c).OwnerID(), propertyID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
