package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is a managed rental property (bien).
type Property struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"proprietaire_id"`
	Name        string    `json:"nom"`
	Address     string    `json:"adresse"`
	Area        float64   `json:"superficie"` // Surface in square meters.
	RoomCounts  int       `json:"nombre_pieces"`
	MonthlyRent int64     `json:"loyer_mensuel"` // Whole FCFA.
	CreatedAt   time.Time `json:"created_at"`
}
