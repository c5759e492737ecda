// Package document builds receipt and contract bodies and lays them out as PDF.
package document

import (
	"bytes"
	"text/template"

	"kasa/config"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
)

type generator struct {
	renderer *pdfRenderer
	currency string
}

// New builds the document generator from the document settings.
func New(cfg *config.Config) service.DocumentGenerator {
	return &generator{
		renderer: newPDFRenderer(cfg.Document),
		currency: cfg.Document.Currency,
	}
}

type receiptFields struct {
	*service.ReceiptData
	Currency string
}

type contractFields struct {
	*service.ContractData
	Currency string
}

func (g *generator) ReceiptBody(data *service.ReceiptData) (string, error) {
	return execute(receiptTemplate, receiptFields{ReceiptData: data, Currency: g.currency})
}

func (g *generator) ContractBody(data *service.ContractData) (string, error) {
	return execute(contractTemplate, contractFields{ContractData: data, Currency: g.currency})
}

func (g *generator) Render(doc *service.Document) ([]byte, error) {
	return g.renderer.render(doc)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", domainerrors.ErrEncoding.WithDetails(err.Error())
	}

	return buf.String(), nil
}
