package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
	"kasa/internal/errors"
	"kasa/internal/usecase"
	"kasa/internal/util"

	"github.com/google/uuid"
)

type documentService struct {
	store  service.ObjectStore
	logger *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(store service.ObjectStore, logger *slog.Logger) usecase.DocumentUsecase {
	return &documentService{store: store, logger: logger}
}

// Download serves objects under the owner's prefix only.
func (srv *documentService) Download(ctx context.Context, ownerID uuid.UUID, objectKey string) (*service.StoredObject, error) {
	cleaned := path.Clean("/" + objectKey)[1:]
	if cleaned != objectKey || !strings.HasPrefix(cleaned, ownerID.String()+"/") {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Document outside owner prefix",
			slog.String("path", objectKey),
			slog.Any("owner_id", ownerID),
		)

		return nil, domainerrors.ErrForbidden
	}

	obj, err := srv.store.Download(ctx, cleaned)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorObjectStore, err), "download document")
	}

	return obj, nil
}

// VerifyReceipt answers for {owner_id}/quittance_*.pdf keys only; anything else is reported missing.
func (srv *documentService) VerifyReceipt(ctx context.Context, objectKey string) (*usecase.ReceiptVerification, error) {
	owner, filename, ok := strings.Cut(objectKey, "/")
	if !ok || path.Clean(objectKey) != objectKey || strings.Contains(filename, "/") ||
		!strings.HasPrefix(filename, entity.ReceiptFilePrefix) || path.Ext(filename) != ".pdf" {
		return nil, domainerrors.ErrDocumentNotFound
	}
	if _, err := uuid.Parse(owner); err != nil {
		return nil, domainerrors.ErrDocumentNotFound
	}

	obj, err := srv.store.Download(ctx, objectKey)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorObjectStore, err), "verify receipt")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Receipt verified", slog.String("path", objectKey))

	return &usecase.ReceiptVerification{
		Path:     objectKey,
		Size:     len(obj.Data),
		Checksum: util.Checksum(obj.Data),
	}, nil
}
