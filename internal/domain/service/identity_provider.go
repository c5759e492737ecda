// Package service defines interfaces for core, stateless domain logic
// and for the external collaborators the use cases depend on.
package service

import (
	"context"

	"github.com/google/uuid"
)

// ProviderIdentity is what the identity provider returns for a signup.
// ID is uuid.Nil when the provider defers identity confirmation.
type ProviderIdentity struct {
	ID    uuid.UUID
	Email string

	// ConfirmationToken is what the provider mails for a pending identity.
	ConfirmationToken string
}

// ConfirmationPending reports whether the provider has not issued an id yet.
func (p *ProviderIdentity) ConfirmationPending() bool {
	return p.ID == uuid.Nil
}

// ProviderSession is the result of a successful credential verification.
type ProviderSession struct {
	Identity    ProviderIdentity
	AccessToken string
}

// IdentityProvider verifies credentials and issues opaque identity ids.
type IdentityProvider interface {
	// CreateIdentity registers a new login. It fails with an auth error when the provider rejects it.
	CreateIdentity(ctx context.Context, email, password string) (*ProviderIdentity, error)

	// ConfirmIdentity activates a pending identity from its confirmation token.
	ConfirmIdentity(ctx context.Context, token string) (*ProviderIdentity, error)

	// VerifyCredentials checks an e-mail/password pair and opens a provider session.
	VerifyCredentials(ctx context.Context, email, password string) (*ProviderSession, error)

	// InvalidateSession revokes a provider session token.
	InvalidateSession(ctx context.Context, accessToken string) error

	// ValidateSession returns the identity id of a live provider session.
	ValidateSession(ctx context.Context, accessToken string) (uuid.UUID, error)
}
