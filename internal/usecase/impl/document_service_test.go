package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
	mockSvc "kasa/internal/mocks/service"
	"kasa/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_Download(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewDocumentService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ownerID := uuid.New()
	key := ownerID.String() + "/quittance_Mars_2025_Fall.pdf"

	store.On("Download", mock.Anything, key).Return(&service.StoredObject{
		Data:        []byte("%PDF-1.3"),
		ContentType: "application/pdf",
	}, nil)

	obj, err := svc.Download(context.Background(), ownerID, key)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", obj.ContentType)
}

func TestDocumentService_Download_OutsideOwnerPrefix(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewDocumentService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ownerID := uuid.New()

	keys := []string{
		uuid.NewString() + "/quittance.pdf",
		ownerID.String() + "/../" + uuid.NewString() + "/quittance.pdf",
		"/" + ownerID.String() + "/quittance.pdf",
		ownerID.String(),
	}

	for _, key := range keys {
		_, err := svc.Download(context.Background(), ownerID, key)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden, key)
	}

	store.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestDocumentService_Download_Missing(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewDocumentService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ownerID := uuid.New()
	key := ownerID.String() + "/absent.pdf"

	store.On("Download", mock.Anything, key).Return(nil, domainerrors.ErrDocumentNotFound)

	_, err := svc.Download(context.Background(), ownerID, key)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestDocumentService_VerifyReceipt(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewDocumentService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	key := uuid.NewString() + "/quittance_Mars_2025_Fall.pdf"
	data := []byte("%PDF-1.3 receipt")

	store.On("Download", mock.Anything, key).Return(&service.StoredObject{Data: data, ContentType: "application/pdf"}, nil)

	verification, err := svc.VerifyReceipt(context.Background(), key)

	require.NoError(t, err)
	assert.Equal(t, key, verification.Path)
	assert.Equal(t, len(data), verification.Size)
	assert.Equal(t, util.Checksum(data), verification.Checksum)
}

func TestDocumentService_VerifyReceipt_OnlyReceipts(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewDocumentService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ownerID := uuid.NewString()

	keys := []string{
		ownerID + "/contrat_Fall_2025-01-01.pdf",
		ownerID + "/quittance_Mars_2025_Fall.txt",
		"not-a-uuid/quittance_Mars_2025_Fall.pdf",
		ownerID + "/../" + ownerID + "/quittance_Mars_2025_Fall.pdf",
		ownerID + "/sub/quittance_Mars_2025_Fall.pdf",
		"quittance_Mars_2025_Fall.pdf",
	}

	for _, key := range keys {
		_, err := svc.VerifyReceipt(context.Background(), key)
		assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound, key)
	}

	store.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestDocumentService_VerifyReceipt_Missing(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewDocumentService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	key := uuid.NewString() + "/quittance_Mars_2025_Fall.pdf"

	store.On("Download", mock.Anything, key).Return(nil, domainerrors.ErrDocumentNotFound)

	_, err := svc.VerifyReceipt(context.Background(), key)

	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}
