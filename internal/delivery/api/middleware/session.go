package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
	"kasa/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderSessionToken carries the signed session between requests.
	HeaderSessionToken = "X-Session-Token"
	// SessionCookie is the cookie alternative to HeaderSessionToken.
	SessionCookie = "kasa_session"
)

// SessionMiddleware restores the visitor session from the request and writes the
// session held by the context back on the response.
type SessionMiddleware struct {
	tokens   service.TokenService
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokens service.TokenService, sessions usecase.SessionUsecase, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Load decodes the session token, applies the page guard and stores the session.
// A missing or invalid token starts a fresh Home session.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		result := m.sessions.Resolve(c.Request().Context(), m.decode(c))
		deliverycontext.SetSession(c, result.Session)

		c.Response().Before(func() {
			m.write(c)
		})

		return next(c)
	}
}

// RequireApp rejects requests whose session is not authenticated.
// It must be used AFTER Load.
func (m *SessionMiddleware) RequireApp(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !deliverycontext.GetSession(c).Authenticated() {
			return domainerrors.ErrNotAuthenticated
		}

		return next(c)
	}
}

func (m *SessionMiddleware) decode(c echo.Context) entity.Session {
	token := c.Request().Header.Get(HeaderSessionToken)
	if token == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return entity.NewSession()
	}

	session, err := m.tokens.DecodeSession(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Discarding session token", slog.Any("error", err))

		return entity.NewSession()
	}

	return session
}

func (m *SessionMiddleware) write(c echo.Context) {
	token, err := m.tokens.EncodeSession(deliverycontext.GetSession(c))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Failed to encode session", slog.Any("error", err))

		return
	}

	c.Response().Header().Set(HeaderSessionToken, token)
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.tokens.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}
