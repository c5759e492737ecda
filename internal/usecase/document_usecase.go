package usecase

import (
	"context"

	"kasa/internal/domain/service"

	"github.com/google/uuid"
)

// ReceiptVerificationPrefix is the public route encoded in receipt QR codes:
// {base}/receipts/{owner_id}/{filename}.
const ReceiptVerificationPrefix = "/receipts/"

// DocumentUsecase serves stored receipts and contracts back to their owner.
type DocumentUsecase interface {
	Download(ctx context.Context, ownerID uuid.UUID, path string) (*service.StoredObject, error)
	// VerifyReceipt confirms that a receipt was issued and stored. It needs no session.
	VerifyReceipt(ctx context.Context, path string) (*ReceiptVerification, error)
}

// ReceiptVerification describes a stored receipt without exposing its content.
type ReceiptVerification struct {
	Path     string `json:"chemin"`
	Size     int    `json:"taille"`
	Checksum string `json:"sha256"`
}
