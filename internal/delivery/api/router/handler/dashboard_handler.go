package handler

import (
	"net/http"

	"kasa/internal/delivery/api/response"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the owner's summary figures.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

func (h *DashboardHandler) Dashboard(c echo.Context) error {
	summary, err := h.dashboardUC.Dashboard(c.Request().Context(), deliverycontext.GetSession(c).OwnerID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}
