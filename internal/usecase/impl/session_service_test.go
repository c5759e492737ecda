package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/repository"
	"kasa/internal/domain/service"
	mockRepo "kasa/internal/mocks/repository"
	mockSvc "kasa/internal/mocks/service"
	"kasa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session router tests.
type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	provider *mockSvc.MockIdentityProvider
	profiles *mockRepo.MockProfileRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	provider := mockSvc.NewMockIdentityProvider(t)
	profiles := mockRepo.NewMockProfileRepository(t)

	return sessionServiceFixtures{
		service: NewSessionService(SessionServiceParams{
			Provider: provider,
			Profiles: profiles,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		provider: provider,
		profiles: profiles,
	}
}

func signedInSession(id uuid.UUID) entity.Session {
	return entity.Session{
		Page:        entity.PageApp,
		Identity:    &entity.Identity{ID: id, Email: "awa@example.com", GivenName: "Awa", FamilyName: "Diop"},
		AccessToken: "provider-token",
	}
}

func TestSessionService_Resolve_GuardsApp(t *testing.T) {
	fx := createTestSessionService(t)

	result := fx.service.Resolve(context.Background(), entity.Session{Page: entity.PageApp})

	assert.Equal(t, entity.PageHome, result.Page)
	assert.Equal(t, entity.PageHome, result.Session.Page)
	assert.Nil(t, result.Session.Identity)
}

func TestSessionService_Resolve_EmptyIdentityIsAnonymous(t *testing.T) {
	fx := createTestSessionService(t)

	result := fx.service.Resolve(context.Background(), entity.Session{
		Page:     entity.PageApp,
		Identity: &entity.Identity{Email: "awa@example.com"},
	})

	assert.Equal(t, entity.PageHome, result.Page)
	assert.Nil(t, result.Session.Identity)
}

func TestSessionService_Resolve_LiveSession(t *testing.T) {
	fx := createTestSessionService(t)
	id := uuid.New()

	fx.provider.On("ValidateSession", mock.Anything, "provider-token").Return(id, nil)

	result := fx.service.Resolve(context.Background(), signedInSession(id))

	assert.Equal(t, entity.PageApp, result.Page)
	require.NotNil(t, result.Session.Identity)
	assert.Equal(t, id, result.Session.Identity.ID)
}

func TestSessionService_Resolve_RevokedSession(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("ValidateSession", mock.Anything, "provider-token").Return(uuid.Nil, domainerrors.ErrSessionInvalid)

	result := fx.service.Resolve(context.Background(), signedInSession(uuid.New()))

	assert.Equal(t, entity.PageHome, result.Page)
	assert.Nil(t, result.Session.Identity)
	assert.Empty(t, result.Session.AccessToken)
}

func TestSessionService_Resolve_ProviderSessionOfAnotherIdentity(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("ValidateSession", mock.Anything, "provider-token").Return(uuid.New(), nil)

	result := fx.service.Resolve(context.Background(), signedInSession(uuid.New()))

	assert.Equal(t, entity.PageHome, result.Page)
	assert.Nil(t, result.Session.Identity)
	assert.Empty(t, result.Session.AccessToken)
}

func TestSessionService_Resolve_UnknownPage(t *testing.T) {
	fx := createTestSessionService(t)

	result := fx.service.Resolve(context.Background(), entity.Session{Page: "admin"})
	assert.Equal(t, entity.PageHome, result.Page)
}

func TestSessionService_Navigate(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	result, err := fx.service.Navigate(ctx, entity.NewSession(), entity.PageSignup)
	require.NoError(t, err)
	assert.Equal(t, entity.PageSignup, result.Page)

	result, err = fx.service.Navigate(ctx, result.Session, entity.PageLogin)
	require.NoError(t, err)
	assert.Equal(t, entity.PageLogin, result.Page)

	// Anonymous visitors cannot reach App.
	result, err = fx.service.Navigate(ctx, result.Session, entity.PageApp)
	require.NoError(t, err)
	assert.Equal(t, entity.PageHome, result.Page)

	_, err = fx.service.Navigate(ctx, entity.NewSession(), "admin")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPage)
}

func TestSessionService_CreateAccount_Success(t *testing.T) {
	fx := createTestSessionService(t)
	id := uuid.New()

	fx.provider.On("CreateIdentity", mock.Anything, "awa@example.com", "secret").
		Return(&service.ProviderIdentity{ID: id, Email: "awa@example.com"}, nil)
	fx.profiles.On("Create", mock.Anything, &entity.Profile{ID: id, Name: "Diop", Surname: "Awa"}).Return(nil)

	result, err := fx.service.CreateAccount(context.Background(), entity.Session{Page: entity.PageSignup}, &usecase.CreateAccountInput{
		GivenName:  "Awa",
		FamilyName: "Diop",
		Email:      "awa@example.com",
		Password:   "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PageLogin, result.Page)
	assert.Nil(t, result.Session.Identity)
	assert.Equal(t, statusAccountCreated, result.Status)
}

func TestSessionService_CreateAccount_MissingField(t *testing.T) {
	fx := createTestSessionService(t)

	inputs := []*usecase.CreateAccountInput{
		{FamilyName: "Diop", Email: "awa@example.com", Password: "secret"},
		{GivenName: "Awa", Email: "awa@example.com", Password: "secret"},
		{GivenName: "Awa", FamilyName: "Diop", Password: "secret"},
		{GivenName: "Awa", FamilyName: "Diop", Email: "awa@example.com", Password: "  "},
	}

	for _, input := range inputs {
		_, err := fx.service.CreateAccount(context.Background(), entity.NewSession(), input)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	}

	fx.provider.AssertNotCalled(t, "CreateIdentity", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_CreateAccount_DeferredConfirmation(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("CreateIdentity", mock.Anything, "awa@example.com", "secret").
		Return(&service.ProviderIdentity{Email: "awa@example.com"}, nil)

	session := entity.Session{Page: entity.PageSignup}
	result, err := fx.service.CreateAccount(context.Background(), session, &usecase.CreateAccountInput{
		GivenName: "Awa", FamilyName: "Diop", Email: "awa@example.com", Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, statusConfirmEmail, result.Status)
	assert.Equal(t, entity.PageSignup, result.Page)
	fx.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_ConfirmAccount(t *testing.T) {
	fx := createTestSessionService(t)
	id := uuid.New()

	fx.provider.On("ConfirmIdentity", mock.Anything, "confirm-token").
		Return(&service.ProviderIdentity{ID: id, Email: "awa@example.com"}, nil)

	result, err := fx.service.ConfirmAccount(context.Background(), entity.NewSession(), &usecase.ConfirmAccountInput{Token: "confirm-token"})

	require.NoError(t, err)
	assert.Equal(t, entity.PageLogin, result.Page)
	assert.Equal(t, statusEmailConfirmed, result.Status)
	assert.Nil(t, result.Session.Identity)
	fx.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_ConfirmAccount_MissingToken(t *testing.T) {
	fx := createTestSessionService(t)

	result, err := fx.service.ConfirmAccount(context.Background(), entity.NewSession(), &usecase.ConfirmAccountInput{Token: "  "})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.provider.AssertNotCalled(t, "ConfirmIdentity", mock.Anything, mock.Anything)
}

func TestSessionService_ConfirmAccount_InvalidToken(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("ConfirmIdentity", mock.Anything, "expired").Return(nil, domainerrors.ErrConfirmationInvalid)

	session := entity.Session{Page: entity.PageSignup}
	result, err := fx.service.ConfirmAccount(context.Background(), session, &usecase.ConfirmAccountInput{Token: "expired"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationInvalid)
	assert.Equal(t, domainerrors.KindAuth, domainerrors.KindOf(err))
}

func TestSessionService_CreateAccount_ProviderRejects(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("CreateIdentity", mock.Anything, "awa@example.com", "secret").
		Return(nil, domainerrors.ErrIdentityAlreadyExists)

	result, err := fx.service.CreateAccount(context.Background(), entity.NewSession(), &usecase.CreateAccountInput{
		GivenName: "Awa", FamilyName: "Diop", Email: "awa@example.com", Password: "secret",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyExists)
	assert.Equal(t, domainerrors.KindAuth, domainerrors.KindOf(err))
}

func TestSessionService_CreateAccount_ProviderUnreachable(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("CreateIdentity", mock.Anything, "awa@example.com", "secret").
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.CreateAccount(context.Background(), entity.NewSession(), &usecase.CreateAccountInput{
		GivenName: "Awa", FamilyName: "Diop", Email: "awa@example.com", Password: "secret",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.KindCollaborator, appErr.Kind())
	assert.Equal(t, "Erreur : connection refused", appErr.Message())
}

func TestSessionService_CreateAccount_ProfileInsertFails(t *testing.T) {
	fx := createTestSessionService(t)
	id := uuid.New()

	fx.provider.On("CreateIdentity", mock.Anything, "awa@example.com", "secret").
		Return(&service.ProviderIdentity{ID: id, Email: "awa@example.com"}, nil)
	fx.profiles.On("Create", mock.Anything, mock.AnythingOfType("*entity.Profile")).
		Return(domainerrors.NewCollaboratorError(domainerrors.CollaboratorRecordStore, errors.New("relation utilisateurs does not exist")))

	_, err := fx.service.CreateAccount(context.Background(), entity.NewSession(), &usecase.CreateAccountInput{
		GivenName: "Awa", FamilyName: "Diop", Email: "awa@example.com", Password: "secret",
	})

	assert.Equal(t, domainerrors.KindCollaborator, domainerrors.KindOf(err))
}

func TestSessionService_Authenticate_Success(t *testing.T) {
	fx := createTestSessionService(t)
	id := uuid.New()

	fx.provider.On("VerifyCredentials", mock.Anything, "Awa@Example.com", "secret").
		Return(&service.ProviderSession{
			Identity:    service.ProviderIdentity{ID: id, Email: "awa@example.com"},
			AccessToken: "provider-token",
		}, nil)
	fx.profiles.On("FindByID", mock.Anything, id).Return(&entity.Profile{ID: id, Name: "Diop", Surname: "Awa"}, nil)

	result, err := fx.service.Authenticate(context.Background(), entity.Session{Page: entity.PageLogin}, &usecase.AuthenticateInput{
		Email:    "Awa@Example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PageApp, result.Page)
	require.NotNil(t, result.Session.Identity)
	assert.Equal(t, id, result.Session.Identity.ID)
	assert.Equal(t, "Awa@Example.com", result.Session.Identity.Email)
	assert.Equal(t, "Awa", result.Session.Identity.GivenName)
	assert.Equal(t, "Diop", result.Session.Identity.FamilyName)
	assert.Equal(t, "provider-token", result.Session.AccessToken)
	assert.Equal(t, "Bienvenue, Awa", result.Status)
}

func TestSessionService_Authenticate_MissingProfile(t *testing.T) {
	fx := createTestSessionService(t)
	id := uuid.New()

	fx.provider.On("VerifyCredentials", mock.Anything, "awa@example.com", "secret").
		Return(&service.ProviderSession{Identity: service.ProviderIdentity{ID: id}, AccessToken: "tok"}, nil)
	fx.profiles.On("FindByID", mock.Anything, id).Return(nil, repository.ErrProfileNotFound)

	result, err := fx.service.Authenticate(context.Background(), entity.NewSession(), &usecase.AuthenticateInput{
		Email: "awa@example.com", Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PageApp, result.Page)
	assert.Empty(t, result.Session.Identity.GivenName)
	assert.Empty(t, result.Session.Identity.FamilyName)
	assert.Equal(t, "Bienvenue, awa@example.com", result.Status)
}

func TestSessionService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("VerifyCredentials", mock.Anything, "awa@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	session := entity.Session{Page: entity.PageLogin}
	result, err := fx.service.Authenticate(context.Background(), session, &usecase.AuthenticateInput{
		Email: "awa@example.com", Password: "wrong",
	})

	assert.Nil(t, result)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Identifiants incorrects.", appErr.Message())
	assert.Nil(t, session.Identity)
}

func TestSessionService_Authenticate_MissingCredentials(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Authenticate(context.Background(), entity.NewSession(), &usecase.AuthenticateInput{Email: "awa@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrCredentialsMissing)
	fx.provider.AssertNotCalled(t, "VerifyCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_SignOut(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("InvalidateSession", mock.Anything, "provider-token").Return(nil)

	result := fx.service.SignOut(context.Background(), signedInSession(uuid.New()))

	assert.Equal(t, entity.PageHome, result.Page)
	assert.Nil(t, result.Session.Identity)
	assert.Empty(t, result.Session.AccessToken)
}

func TestSessionService_SignOut_ProviderFailureSwallowed(t *testing.T) {
	fx := createTestSessionService(t)

	fx.provider.On("InvalidateSession", mock.Anything, "provider-token").Return(errors.New("provider down"))

	result := fx.service.SignOut(context.Background(), signedInSession(uuid.New()))

	require.NotNil(t, result)
	assert.Equal(t, entity.PageHome, result.Page)
	assert.Nil(t, result.Session.Identity)
	assert.Equal(t, statusSignedOut, result.Status)
}
