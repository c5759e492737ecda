package usecase

import (
	"context"

	"kasa/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertyUsecase manages an owner's properties (biens).
type PropertyUsecase interface {
	CreateProperty(ctx context.Context, ownerID uuid.UUID, input *CreatePropertyInput) (*entity.Property, error)
	ListProperties(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)
	DeleteProperty(ctx context.Context, ownerID, propertyID uuid.UUID) error
}

// CreatePropertyInput defines the data required to register a property.
type CreatePropertyInput struct {
	Name        string  `json:"nom"`
	Address     string  `json:"adresse"`
	Area        float64 `json:"superficie"`
	RoomCounts  int     `json:"nombre_pieces"`
	MonthlyRent int64   `json:"loyer_mensuel"`
}
