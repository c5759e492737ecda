package document

import (
	"strings"
	"text/template"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// frenchDate formats t as "2 janvier 2025".
func frenchDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	var b strings.Builder
	b.WriteString(t.Format("2 "))
	b.WriteString(frenchMonths[t.Month()-1])
	b.WriteString(t.Format(" 2006"))

	return b.String()
}

var templateFuncs = template.FuncMap{
	"date": frenchDate,
}

var receiptTemplate = template.Must(template.New("quittance").Funcs(templateFuncs).Parse(
	`Je soussigné(e) {{.OwnerName}}, propriétaire du bien « {{.PropertyName}} »` +
		`{{with .PropertyAddress}} situé {{.}}{{end}}, déclare avoir reçu de {{.TenantName}} ` +
		`la somme de {{.Amount}} {{.Currency}} au titre du loyer de {{.Month}} {{.Year}}.

Statut du paiement : {{.StatusLabel}}

Cette quittance annule tous les reçus qui auraient pu être donnés pour acompte versé sur la période.

Fait le {{date .IssuedOn}}.
`))

var contractTemplate = template.Must(template.New("contrat").Funcs(templateFuncs).Parse(
	`Entre les soussignés :

Le bailleur : {{.OwnerName}}
Le locataire : {{.TenantName}}{{with .TenantEmail}}, e-mail : {{.}}{{end}}{{with .TenantPhone}}, téléphone : {{.}}{{end}}

Article 1 - Objet
Le bailleur donne en location au locataire le bien « {{.PropertyName}} »` +
		`{{with .PropertyAddress}} situé {{.}}{{end}}` +
		`{{if .Area}}, d'une superficie de {{.Area}} m²{{end}}` +
		`{{if .RoomCounts}}, comprenant {{.RoomCounts}} pièce(s){{end}}.

Article 2 - Durée
Le bail prend effet le {{date .StartDate}} et se termine le {{date .EndDate}}.

Article 3 - Loyer
Le loyer mensuel est fixé à {{.MonthlyRent}} {{.Currency}}, payable par {{.PaymentMode}}.

Article 4 - Dépôt de garantie
Le locataire verse un dépôt de garantie de {{.Deposit}} {{.Currency}}.

Fait le {{date .IssuedOn}}, en deux exemplaires.

Le bailleur                                        Le locataire
`))
