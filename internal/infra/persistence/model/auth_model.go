package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialModel mirrors the 'identities' table owned by the built-in identity provider.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Confirmed    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (CredentialModel) TableName() string {
	return "identities"
}

func (m *CredentialModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// RevokedTokenModel records provider session tokens invalidated by sign-out.
type RevokedTokenModel struct {
	TokenID   string `gorm:"type:varchar(64);primaryKey"`
	RevokedAt time.Time
}

func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
