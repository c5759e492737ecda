package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceiptFilename(t *testing.T) {
	assert.Equal(t, "quittance_Mars_2025_Fall.pdf", ReceiptFilename("Mars", 2025, "Fall"))
	assert.Equal(t, "quittance_F_vrier_2025_Moussa_Traor_.pdf", ReceiptFilename("Février", 2025, "Moussa Traoré"))
	assert.Equal(t, "quittance_Mars_2025_N_Diaye.pdf", ReceiptFilename("Mars", 2025, "N'Diaye"))
}

func TestContractFilename(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "contrat_Fall_2025-01-01.pdf", ContractFilename("Fall", start))
	assert.Equal(t, "contrat_A_ssatou_Ba_2025-01-01.pdf", ContractFilename("Aïssatou Ba", start))
}

func TestSessionGuardHelpers(t *testing.T) {
	session := NewSession()
	assert.Equal(t, PageHome, session.Page)
	assert.False(t, session.Authenticated())

	session.Identity = &Identity{}
	assert.False(t, session.Authenticated())

	assert.True(t, PageApp.Valid())
	assert.False(t, Page("admin").Valid())
}

func TestPaymentStatusLabel(t *testing.T) {
	assert.Equal(t, "Payé", PaymentPaid.Label())
	assert.Equal(t, "Impayé", PaymentUnpaid.Label())
	assert.False(t, PaymentStatus("late").Valid())
}
