package handler

import (
	"net/http"
	"path"

	"kasa/internal/delivery/api/response"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DocumentHandler streams stored receipts and leases, and answers receipt verification codes.
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(documentUC usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{documentUC: documentUC}
}

// Download serves GET /api/v1/documents/{owner_id}/{filename}.
func (h *DocumentHandler) Download(c echo.Context) error {
	objectKey := c.Param("*")

	obj, err := h.documentUC.Download(c.Request().Context(), deliverycontext.GetSession(c).OwnerID(), objectKey)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, path.Base(objectKey), obj.ContentType, obj.Data)
}

// VerifyReceipt serves GET /receipts/{owner_id}/{filename}, the URL printed in receipt QR codes.
func (h *DocumentHandler) VerifyReceipt(c echo.Context) error {
	verification, err := h.documentUC.VerifyReceipt(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, verification)
}
