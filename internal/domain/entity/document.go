package entity

import (
	"strconv"
	"time"

	"kasa/internal/util"
)

// Titles printed at the top of each document.
const (
	ReceiptTitle  = "Quittance de loyer"
	ContractTitle = "Contrat de bail"
)

// ReceiptFilePrefix starts the file name of every stored quittance.
const ReceiptFilePrefix = "quittance_"

// ReceiptFilename names a quittance: quittance_{Month}_{Year}_{Tenant}.pdf, made storage-safe.
func ReceiptFilename(month string, year int, tenant string) string {
	return util.SanitizeFilename(ReceiptFilePrefix + month + "_" + strconv.Itoa(year) + "_" + tenant + ".pdf")
}

// ContractFilename names a lease: contrat_{Tenant}_{start}.pdf, made storage-safe.
func ContractFilename(tenant string, start time.Time) string {
	return util.SanitizeFilename("contrat_" + tenant + "_" + start.Format(time.DateOnly) + ".pdf")
}
