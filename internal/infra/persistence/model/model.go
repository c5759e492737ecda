// Package model holds the GORM persistence models. Table and column names follow
// the French schema the record store was created with.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// All returns every model, in migration order.
func All() []any {
	return []any{
		&CredentialModel{},
		&RevokedTokenModel{},
		&ProfileModel{},
		&PropertyModel{},
		&TenantModel{},
		&ContractModel{},
		&PaymentModel{},
	}
}

// assignID gives a record a time-ordered UUID when the caller did not set one.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// ProfileModel mirrors the 'utilisateurs' table. ID is the provider-issued identity id.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nom       string    `gorm:"column:nom;type:varchar(100);not null"`
	Prenom    string    `gorm:"column:prenom;type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "utilisateurs"
}

// PropertyModel mirrors the 'biens' table.
type PropertyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"column:proprietaire_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:nom;type:varchar(255);not null"`
	Address     string    `gorm:"column:adresse;type:text"`
	Area        float64   `gorm:"column:superficie"`
	RoomCounts  int       `gorm:"column:nombre_pieces"`
	MonthlyRent int64     `gorm:"column:loyer_mensuel"`
	CreatedAt   time.Time
}

func (PropertyModel) TableName() string {
	return "biens"
}

func (m *PropertyModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// PaymentModel mirrors the 'paiements' table.
type PaymentModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID  `gorm:"column:proprietaire_id;type:uuid;not null;index"`
	PropertyID uuid.UUID  `gorm:"column:bien_id;type:uuid;not null;index"`
	ContractID *uuid.UUID `gorm:"column:contrat_id;type:uuid"`
	TenantName string     `gorm:"column:locataire;type:varchar(255);not null"`
	Month      string     `gorm:"column:mois;type:varchar(20);not null"`
	Year       int        `gorm:"column:annee;not null"`
	Amount     int64      `gorm:"column:montant;not null"`
	Status     string     `gorm:"column:statut;type:varchar(20);not null"`
	ReceiptURL string     `gorm:"column:quittance_url;type:text"`
	CreatedAt  time.Time
}

func (PaymentModel) TableName() string {
	return "paiements"
}

func (m *PaymentModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// ContractModel mirrors the 'contrats' table.
type ContractModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"column:proprietaire_id;type:uuid;not null;index"`
	PropertyID  uuid.UUID  `gorm:"column:bien_id;type:uuid;not null;index"`
	TenantID    *uuid.UUID `gorm:"column:locataire_id;type:uuid"`
	StartDate   time.Time  `gorm:"column:date_debut;not null"`
	EndDate     time.Time  `gorm:"column:date_fin;not null"`
	MonthlyRent int64      `gorm:"column:loyer_mensuel;not null"`
	Deposit     int64      `gorm:"column:caution"`
	PaymentMode string     `gorm:"column:mode_paiement;type:varchar(50)"`
	DocumentURL string     `gorm:"column:document_url;type:text"`
	CreatedAt   time.Time
}

func (ContractModel) TableName() string {
	return "contrats"
}

func (m *ContractModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// TenantModel mirrors the 'locataires' table. Names are unique per owner.
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"column:proprietaire_id;type:uuid;not null;uniqueIndex:idx_locataire_owner_nom"`
	Name      string    `gorm:"column:nom;type:varchar(255);not null;uniqueIndex:idx_locataire_owner_nom"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	Phone     string    `gorm:"column:telephone;type:varchar(50)"`
	CreatedAt time.Time
}

func (TenantModel) TableName() string {
	return "locataires"
}

func (m *TenantModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
