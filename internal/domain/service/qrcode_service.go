package service

// QRCodeService renders verification codes printed on receipts.
type QRCodeService interface {
	// GenerateVerificationQR encodes url into a PNG QR code.
	GenerateVerificationQR(url string) ([]byte, error)
}
