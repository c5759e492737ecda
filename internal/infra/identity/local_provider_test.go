package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kasa/config"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
	"kasa/internal/infra/auth"
	"kasa/internal/infra/persistence/gormstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider(t *testing.T, deferConfirmation bool) service.IdentityProvider {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		Auth:     &config.AuthConfig{DeferConfirmation: deferConfirmation, SessionTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	db, err := gormstore.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, gormstore.Migrate(db))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewLocalProvider(Params{
		Config:      cfg,
		Credentials: gormstore.NewCredentialRepository(db),
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Tokens:      tokens,
	})
}

func TestLocalProvider_SignupAndLogin(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, false)

	created, err := provider.CreateIdentity(ctx, "awa@example.com", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.ConfirmationPending())

	session, err := provider.VerifyCredentials(ctx, "awa@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.Identity.ID)
	assert.NotEmpty(t, session.AccessToken)

	id, err := provider.ValidateSession(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)
}

func TestLocalProvider_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, false)

	_, err := provider.CreateIdentity(ctx, "awa@example.com", "secret")
	require.NoError(t, err)

	_, err = provider.CreateIdentity(ctx, "AWA@example.com", "other")
	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyExists)
	assert.Equal(t, domainerrors.KindAuth, domainerrors.KindOf(err))
}

func TestLocalProvider_RejectsEmptySignup(t *testing.T) {
	provider := newTestProvider(t, false)

	_, err := provider.CreateIdentity(context.Background(), "  ", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrSignupRejected)
}

func TestLocalProvider_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, false)

	_, err := provider.CreateIdentity(ctx, "awa@example.com", "secret")
	require.NoError(t, err)

	_, err = provider.VerifyCredentials(ctx, "awa@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = provider.VerifyCredentials(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_DeferredConfirmation(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, true)

	created, err := provider.CreateIdentity(ctx, "awa@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, created.ConfirmationPending())
	assert.Equal(t, "awa@example.com", created.Email)
	require.NotEmpty(t, created.ConfirmationToken)

	_, err = provider.VerifyCredentials(ctx, "awa@example.com", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	confirmed, err := provider.ConfirmIdentity(ctx, created.ConfirmationToken)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, confirmed.ID)
	assert.Equal(t, "awa@example.com", confirmed.Email)

	session, err := provider.VerifyCredentials(ctx, "awa@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, session.Identity.ID)

	_, err = provider.ConfirmIdentity(ctx, created.ConfirmationToken)
	assert.NoError(t, err)
}

func TestLocalProvider_ConfirmIdentity_InvalidToken(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, true)

	_, err := provider.ConfirmIdentity(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationInvalid)

	// A provider session token is not a confirmation token.
	created, err := provider.CreateIdentity(ctx, "awa@example.com", "secret")
	require.NoError(t, err)
	_, err = provider.ConfirmIdentity(ctx, created.ConfirmationToken)
	require.NoError(t, err)
	session, err := provider.VerifyCredentials(ctx, "awa@example.com", "secret")
	require.NoError(t, err)

	_, err = provider.ConfirmIdentity(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationInvalid)
}

func TestLocalProvider_ConfirmIdentity_UnknownIdentity(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokens.GenerateConfirmationToken(uuid.New(), "ghost@example.com")
	require.NoError(t, err)

	provider := newTestProvider(t, true)
	_, err = provider.ConfirmIdentity(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationInvalid)
}

func TestLocalProvider_InvalidateSession(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, false)

	_, err := provider.CreateIdentity(ctx, "awa@example.com", "secret")
	require.NoError(t, err)
	session, err := provider.VerifyCredentials(ctx, "awa@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, provider.InvalidateSession(ctx, session.AccessToken))

	_, err = provider.ValidateSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	assert.ErrorIs(t, provider.InvalidateSession(ctx, ""), domainerrors.ErrSessionInvalid)
	assert.ErrorIs(t, provider.InvalidateSession(ctx, "garbage"), domainerrors.ErrSessionInvalid)
}
