package document

import (
	"bytes"
	"time"

	"kasa/config"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
	"kasa/internal/util"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	fontFamily   = "Helvetica"
	pageMargin   = 20.0
	ptToMM       = 25.4 / 72
	stampSize    = 35.0
	watermarkPt  = 60.0
	watermarkDeg = 45.0
)

// Every document carries the same dates so identical input yields identical bytes.
var fixedTimestamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type pdfRenderer struct {
	cfg config.DocumentConfig
}

func newPDFRenderer(cfg config.DocumentConfig) *pdfRenderer {
	return &pdfRenderer{cfg: cfg}
}

// render lays out an A4 portrait page flow: centered title, wrapped body, optional stamp.
func (r *pdfRenderer) render(doc *service.Document) ([]byte, error) {
	title, err := encodeCP1252(doc.Title)
	if err != nil {
		return nil, err
	}
	body, err := encodeCP1252(doc.Body)
	if err != nil {
		return nil, err
	}
	watermarkText := doc.Watermark
	if watermarkText == "" {
		watermarkText = r.cfg.Watermark
	}
	watermark, err := encodeCP1252(watermarkText)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.cfg.Compress)
	pdf.SetCreationDate(fixedTimestamp)
	pdf.SetModificationDate(fixedTimestamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(util.SanitizeText(doc.Title), true)
	pdf.SetCreator("KASA", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	if watermark != "" {
		pdf.SetHeaderFunc(func() {
			drawWatermark(pdf, watermark)
		})
	}

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", r.cfg.TitleFontSize)
	pdf.CellFormat(0, r.cfg.TitleFontSize*ptToMM*1.5, title, "", 1, "C", false, 0, "")
	pdf.Ln(r.cfg.LineHeight)

	pdf.SetFont(fontFamily, "", r.cfg.BodyFontSize)
	pdf.MultiCell(0, r.cfg.LineHeight, body, "", "L", false)

	if len(doc.Stamp) > 0 {
		pdf.Ln(r.cfg.LineHeight)
		name := "stamp-" + util.Checksum(doc.Stamp)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(doc.Stamp))
		pdf.ImageOptions(name, pageMargin, pdf.GetY(), stampSize, stampSize, true, opts, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, domainerrors.ErrEncoding.WithDetails(err.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domainerrors.ErrEncoding.WithDetails(err.Error())
	}

	return buf.Bytes(), nil
}

// drawWatermark writes light grey text diagonally across the page center.
func drawWatermark(pdf *fpdf.Fpdf, text string) {
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont(fontFamily, "B", watermarkPt)
	pdf.SetTextColor(220, 220, 220)

	textW := pdf.GetStringWidth(text)
	cx, cy := pageW/2, pageH/2

	pdf.TransformBegin()
	pdf.TransformRotate(watermarkDeg, cx, cy)
	pdf.Text(cx-textW/2, cy, text)
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// encodeCP1252 sanitizes s and converts it to the single-byte encoding of the core fonts.
func encodeCP1252(s string) (string, error) {
	encoded, err := charmap.Windows1252.NewEncoder().String(util.SanitizeText(s))
	if err != nil {
		return "", domainerrors.ErrEncoding.WithDetails(err.Error())
	}

	return encoded, nil
}
