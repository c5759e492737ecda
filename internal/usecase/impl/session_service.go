package impl

import (
	"context"
	"log/slog"

	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/repository"
	"kasa/internal/domain/service"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"go.uber.org/fx"
)

const (
	statusAccountCreated = "Compte créé avec succès ! Vous pouvez vous connecter."
	statusConfirmEmail   = "Compte créé avec succès ! Vérifiez votre e-mail avant de vous connecter."
	statusEmailConfirmed = "E-mail confirmé ! Vous pouvez vous connecter."
	statusSignedOut      = "Déconnecté"
)

// SessionServiceParams defines the dependencies of the session router.
type SessionServiceParams struct {
	fx.In

	Provider service.IdentityProvider
	Profiles repository.ProfileRepository
	Logger   *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	provider service.IdentityProvider
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		provider: params.Provider,
		profiles: params.Profiles,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve renders App only for a live identity. Anything else falls back to Home
// with the identity dropped.
func (srv *sessionService) Resolve(ctx context.Context, session entity.Session) *usecase.SessionResult {
	if !session.Page.Valid() {
		session.Page = entity.PageHome
	}

	if session.Authenticated() && session.AccessToken != "" {
		identityID, err := srv.provider.ValidateSession(ctx, session.AccessToken)
		switch {
		case err != nil:
			srv.log(ctx).Info("Provider session no longer valid", slog.Any("error", err))
			session = entity.NewSession()
		case identityID != session.Identity.ID:
			srv.log(ctx).Warn("Provider session belongs to another identity",
				slog.Any("identity_id", session.Identity.ID),
				slog.Any("provider_identity_id", identityID),
			)
			session = entity.NewSession()
		}
	} else if session.Identity != nil {
		session.Identity = nil
		session.AccessToken = ""
	}

	if session.Page == entity.PageApp && !session.Authenticated() {
		session.Page = entity.PageHome
	}

	return &usecase.SessionResult{Session: session, Page: session.Page}
}

// Navigate overwrites the page and renders through the guard.
func (srv *sessionService) Navigate(ctx context.Context, session entity.Session, target entity.Page) (*usecase.SessionResult, error) {
	if !target.Valid() {
		return nil, domainerrors.ErrInvalidPage.WithDetails(string(target))
	}

	session.Page = target

	return srv.Resolve(ctx, session), nil
}

func (srv *sessionService) CreateAccount(ctx context.Context, session entity.Session, input *usecase.CreateAccountInput) (*usecase.SessionResult, error) {
	if blank(input.GivenName, input.FamilyName, input.Email, input.Password) {
		return nil, domainerrors.ErrValidationFailed
	}

	created, err := srv.provider.CreateIdentity(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Signup rejected", slog.Any("error", err))

		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorIdentity, err), "create identity")
	}
	if created == nil {
		return nil, domainerrors.ErrSignupRejected
	}

	// The provider holds the identity until the e-mail is confirmed; there is no id to key a profile on.
	if created.ConfirmationPending() {
		srv.log(ctx).Info("Signup pending e-mail confirmation")

		return &usecase.SessionResult{Session: session, Page: session.Page, Status: statusConfirmEmail}, nil
	}

	profile := &entity.Profile{
		ID:      created.ID,
		Name:    input.FamilyName,
		Surname: input.GivenName,
	}
	if err := srv.profiles.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to store profile", slog.Any("error", err), slog.Any("identity_id", created.ID))

		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "create profile")
	}

	srv.log(ctx).Info("Account created", slog.Any("identity_id", created.ID))
	session.Page = entity.PageLogin

	return &usecase.SessionResult{Session: session, Page: session.Page, Status: statusAccountCreated}, nil
}

// ConfirmAccount leaves the profile to the first login, which degrades to empty
// names because the signup form was not kept.
func (srv *sessionService) ConfirmAccount(ctx context.Context, session entity.Session, input *usecase.ConfirmAccountInput) (*usecase.SessionResult, error) {
	if blank(input.Token) {
		return nil, domainerrors.ErrValidationFailed
	}

	confirmed, err := srv.provider.ConfirmIdentity(ctx, input.Token)
	if err != nil {
		srv.log(ctx).Info("Confirmation rejected", slog.Any("error", err))

		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorIdentity, err), "confirm identity")
	}

	srv.log(ctx).Info("Identity confirmed", slog.Any("identity_id", confirmed.ID))
	session.Page = entity.PageLogin

	return &usecase.SessionResult{Session: session, Page: session.Page, Status: statusEmailConfirmed}, nil
}

func (srv *sessionService) Authenticate(ctx context.Context, session entity.Session, input *usecase.AuthenticateInput) (*usecase.SessionResult, error) {
	if blank(input.Email, input.Password) {
		return nil, domainerrors.ErrCredentialsMissing
	}

	verified, err := srv.provider.VerifyCredentials(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.Any("error", err))

		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorIdentity, err), "verify credentials")
	}

	identity := &entity.Identity{
		ID:    verified.Identity.ID,
		Email: input.Email,
	}

	profile, err := srv.profiles.FindByID(ctx, verified.Identity.ID)
	switch {
	case err == nil:
		identity.GivenName = profile.Surname
		identity.FamilyName = profile.Name
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.log(ctx).Debug("No profile for identity", slog.Any("identity_id", identity.ID))
	default:
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "find profile")
	}

	session.Identity = identity
	session.AccessToken = verified.AccessToken
	session.Page = entity.PageApp

	welcome := identity.GivenName
	if welcome == "" {
		welcome = identity.Email
	}

	return &usecase.SessionResult{Session: session, Page: session.Page, Status: "Bienvenue, " + welcome}, nil
}

func (srv *sessionService) SignOut(ctx context.Context, session entity.Session) *usecase.SessionResult {
	if err := srv.provider.InvalidateSession(ctx, session.AccessToken); err != nil {
		srv.log(ctx).Warn("Failed to invalidate provider session", slog.Any("error", err))
	}

	cleared := entity.NewSession()

	return &usecase.SessionResult{Session: cleared, Page: cleared.Page, Status: statusSignedOut}
}
