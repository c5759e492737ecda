// Package identity provides the built-in identity provider: credentials live in the
// record store and provider sessions are signed tokens that can be revoked.
package identity

import (
	"context"
	"log/slog"
	"strings"

	"kasa/config"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/repository"
	"kasa/internal/domain/service"
	"kasa/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Params defines the dependencies of the local provider.
type Params struct {
	fx.In

	Config      *config.Config
	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Logger      *slog.Logger `optional:"true"`
}

type localProvider struct {
	credentials       repository.CredentialRepository
	hasher            service.PasswordHasher
	tokens            service.TokenService
	logger            *slog.Logger
	deferConfirmation bool
}

// NewLocalProvider builds the identity provider backed by the record store.
func NewLocalProvider(params Params) service.IdentityProvider {
	deferConfirmation := false
	if params.Config != nil && params.Config.Auth != nil {
		deferConfirmation = params.Config.Auth.DeferConfirmation
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &localProvider{
		credentials:       params.Credentials,
		hasher:            params.Hasher,
		tokens:            params.Tokens,
		logger:            logger,
		deferConfirmation: deferConfirmation,
	}
}

// CreateIdentity registers a login. With deferred confirmation the identity is stored
// unconfirmed and reported without an id until the e-mail is confirmed.
func (p *localProvider) CreateIdentity(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.ErrSignupRejected.WithDetails("email and password are required")
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrSignupRejected.WithDetails(err.Error())
	}

	credential := &entity.Credential{
		Email:        email,
		PasswordHash: hash,
		Confirmed:    !p.deferConfirmation,
	}
	if err := p.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrCredentialExists) {
			return nil, domainerrors.ErrIdentityAlreadyExists
		}

		return nil, err
	}

	if !credential.Confirmed {
		token, err := p.tokens.GenerateConfirmationToken(credential.ID, credential.Email)
		if err != nil {
			return nil, domainerrors.NewCollaboratorError(domainerrors.CollaboratorIdentity, err)
		}

		// No mailer is wired to the local provider; the token is handed over through the logs.
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("Confirmation e-mail pending",
			slog.String("email", credential.Email),
			slog.String("confirmation_token", token),
		)

		return &service.ProviderIdentity{Email: credential.Email, ConfirmationToken: token}, nil
	}

	return &service.ProviderIdentity{ID: credential.ID, Email: credential.Email}, nil
}

// ConfirmIdentity confirms the credential named by a confirmation token. Confirming
// an already confirmed identity succeeds.
func (p *localProvider) ConfirmIdentity(ctx context.Context, token string) (*service.ProviderIdentity, error) {
	claims, err := p.tokens.ValidateConfirmationToken(strings.TrimSpace(token))
	if err != nil {
		return nil, domainerrors.ErrConfirmationInvalid.WithDetails(err.Error())
	}

	if err := p.credentials.Confirm(ctx, claims.IdentityID); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrConfirmationInvalid
		}

		return nil, err
	}

	return &service.ProviderIdentity{ID: claims.IdentityID, Email: claims.Email}, nil
}

func (p *localProvider) VerifyCredentials(ctx context.Context, email, password string) (*service.ProviderSession, error) {
	credential, err := p.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !credential.Confirmed {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("email not confirmed")
	}

	accessToken, err := p.tokens.GenerateAccessToken(credential.ID, credential.Email)
	if err != nil {
		return nil, domainerrors.NewCollaboratorError(domainerrors.CollaboratorIdentity, err)
	}

	return &service.ProviderSession{
		Identity:    service.ProviderIdentity{ID: credential.ID, Email: credential.Email},
		AccessToken: accessToken,
	}, nil
}

// InvalidateSession revokes the token id of a provider session.
func (p *localProvider) InvalidateSession(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return domainerrors.ErrSessionInvalid
	}

	claims, err := p.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return domainerrors.ErrSessionInvalid.WithDetails(err.Error())
	}

	return p.credentials.RevokeToken(ctx, claims.ID)
}

// ValidateSession resolves a provider session token that has not been revoked.
func (p *localProvider) ValidateSession(ctx context.Context, accessToken string) (uuid.UUID, error) {
	claims, err := p.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WithDetails(err.Error())
	}

	revoked, err := p.credentials.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	return claims.IdentityID, nil
}
