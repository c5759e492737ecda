package service

import (
	"time"

	"kasa/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims of an identity provider session token.
type AccessClaims struct {
	IdentityID uuid.UUID `json:"iid"`
	Email      string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs provider access tokens and session tokens.
type TokenService interface {
	// GenerateAccessToken opens a provider session for an identity.
	GenerateAccessToken(identityID uuid.UUID, email string) (string, error)

	// ValidateAccessToken parses and verifies a provider session token.
	ValidateAccessToken(token string) (*AccessClaims, error)

	// GenerateConfirmationToken signs the e-mail confirmation token of a pending identity.
	GenerateConfirmationToken(identityID uuid.UUID, email string) (string, error)

	// ValidateConfirmationToken parses and verifies an e-mail confirmation token.
	ValidateConfirmationToken(token string) (*AccessClaims, error)

	// EncodeSession serializes a session into a signed token.
	EncodeSession(session entity.Session) (string, error)

	// DecodeSession verifies a session token and restores the session.
	DecodeSession(token string) (entity.Session, error)

	// SessionTTL is how long an encoded session stays valid.
	SessionTTL() time.Duration
}
