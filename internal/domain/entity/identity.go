// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated person held by a session.
type Identity struct {
	ID         uuid.UUID `json:"id"`     // Identifier issued by the identity provider.
	Email      string    `json:"email"`  // E-mail the identity signed in with.
	GivenName  string    `json:"prenom"` // Prénom. Empty when no profile record exists.
	FamilyName string    `json:"nom"`    // Nom. Empty when no profile record exists.
}

// Profile is the extra information stored alongside an identity in the record store.
type Profile struct {
	ID        uuid.UUID // Same value as the provider-issued Identity.ID.
	Name      string    // Family name (nom).
	Surname   string    // Given name (prénom).
	CreatedAt time.Time
}

// Credential is a locally managed login, used by the built-in identity provider.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
}
