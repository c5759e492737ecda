package document

import (
	"bytes"
	"testing"
	"time"

	"kasa/config"
	"kasa/internal/domain/entity"
	"kasa/internal/domain/service"
	"kasa/internal/infra/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{Document: config.DocumentConfig{
		Currency:      "FCFA",
		TitleFontSize: 18,
		BodyFontSize:  11,
		LineHeight:    6,
		Compress:      true,
	}}
}

func TestReceiptBody(t *testing.T) {
	gen := New(newTestConfig())

	body, err := gen.ReceiptBody(&service.ReceiptData{
		OwnerName:       "Awa Diop",
		PropertyName:    "Villa Cocody",
		PropertyAddress: "Rue des Jardins",
		TenantName:      "Fall",
		Month:           "Mars",
		Year:            2025,
		Amount:          50000,
		StatusLabel:     "Payé",
		IssuedOn:        time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, body, "50000 FCFA")
	assert.Contains(t, body, "Mars 2025")
	assert.Contains(t, body, "Fall")
	assert.Contains(t, body, "situé Rue des Jardins")
	assert.Contains(t, body, "Statut du paiement : Payé")
	assert.Contains(t, body, "Fait le 5 mars 2025.")
}

func TestReceiptBody_OmitsEmptyAddress(t *testing.T) {
	gen := New(newTestConfig())

	body, err := gen.ReceiptBody(&service.ReceiptData{PropertyName: "Studio", TenantName: "Fall", Month: "Mars", Year: 2025, Amount: 1})
	require.NoError(t, err)
	assert.NotContains(t, body, "situé")
}

func TestContractBody(t *testing.T) {
	gen := New(newTestConfig())

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	body, err := gen.ContractBody(&service.ContractData{
		OwnerName:    "Awa Diop",
		PropertyName: "Villa Cocody",
		Area:         120,
		RoomCounts:   4,
		TenantName:   "Moussa Traoré",
		TenantEmail:  "moussa@example.com",
		StartDate:    start,
		EndDate:      start.AddDate(1, 0, 0),
		MonthlyRent:  250000,
		Deposit:      500000,
		PaymentMode:  "virement",
		IssuedOn:     start,
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Le locataire : Moussa Traoré, e-mail : moussa@example.com")
	assert.Contains(t, body, "prend effet le 1 janvier 2025 et se termine le 1 janvier 2026")
	assert.Contains(t, body, "250000 FCFA, payable par virement")
	assert.Contains(t, body, "dépôt de garantie de 500000 FCFA")
	assert.Contains(t, body, "comprenant 4 pièce(s)")
	assert.NotContains(t, body, "téléphone")
}

func TestRender_ProducesPDF(t *testing.T) {
	gen := New(newTestConfig())

	out, err := gen.Render(&service.Document{Title: entity.ReceiptTitle, Body: "Loyer de Mars 2025 : 50000 FCFA"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestRender_Deterministic(t *testing.T) {
	gen := New(newTestConfig())
	doc := &service.Document{
		Title:     entity.ContractTitle,
		Body:      "Article 1 - Objet\n“Bail” d’habitation, signé à Abidjan.",
		Watermark: "KASA",
	}

	first, err := gen.Render(doc)
	require.NoError(t, err)
	second, err := gen.Render(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_ArbitraryUnicode(t *testing.T) {
	gen := New(newTestConfig())

	out, err := gen.Render(&service.Document{
		Title: "Reçu 🏠",
		Body:  "Payé ✅ — 中文 ́ \xff\xfe",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRender_UncompressedBodyIsCP1252(t *testing.T) {
	cfg := newTestConfig()
	cfg.Document.Compress = false
	gen := New(cfg)

	out, err := gen.Render(&service.Document{Title: "Quittance", Body: "Payé"})
	require.NoError(t, err)

	// é is 0xE9 in Windows-1252.
	assert.True(t, bytes.Contains(out, []byte("Pay\xe9")))
}

func TestRender_WithStamp(t *testing.T) {
	gen := New(newTestConfig())

	stamp, err := qrcode.NewQRCodeService(128, "M").GenerateVerificationQR("https://kasa.example.com/receipts/a/b.pdf")
	require.NoError(t, err)

	withStamp, err := gen.Render(&service.Document{Title: entity.ReceiptTitle, Body: "Mars 2025", Stamp: stamp})
	require.NoError(t, err)
	without, err := gen.Render(&service.Document{Title: entity.ReceiptTitle, Body: "Mars 2025"})
	require.NoError(t, err)

	assert.Greater(t, len(withStamp), len(without))
}

func TestRender_InvalidStamp(t *testing.T) {
	gen := New(newTestConfig())

	out, err := gen.Render(&service.Document{Title: entity.ReceiptTitle, Body: "Mars 2025", Stamp: []byte("not a png")})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestFrenchDate(t *testing.T) {
	assert.Equal(t, "14 août 2025", frenchDate(time.Date(2025, time.August, 14, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, frenchDate(time.Time{}))
}
