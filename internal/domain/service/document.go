package service

import "time"

// Document is a titled text body ready for layout.
type Document struct {
	Title     string
	Body      string
	Watermark string // Optional diagonal text drawn behind the body.
	Stamp     []byte // Optional PNG printed under the body, e.g. a verification QR code.
}

// ReceiptData holds the named fields of a rent receipt (quittance).
type ReceiptData struct {
	OwnerName       string
	PropertyName    string
	PropertyAddress string
	TenantName      string
	Month           string
	Year            int
	Amount          int64
	StatusLabel     string
	IssuedOn        time.Time
}

// ContractData holds the named fields of a lease.
type ContractData struct {
	OwnerName       string
	PropertyName    string
	PropertyAddress string
	Area            float64
	RoomCounts      int
	TenantName      string
	TenantEmail     string
	TenantPhone     string
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     int64
	Deposit         int64
	PaymentMode     string
	IssuedOn        time.Time
}

// DocumentGenerator builds document bodies from named fields and renders them to PDF.
type DocumentGenerator interface {
	ReceiptBody(data *ReceiptData) (string, error)
	ContractBody(data *ContractData) (string, error)

	// Render lays out doc and returns the complete PDF. It never returns a partial buffer.
	Render(doc *Document) ([]byte, error)
}
