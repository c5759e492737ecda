// Package context carries request-scoped values (request id, logger, visitor session)
// through echo.Context and context.Context.
package context

import (
	"context"
	"log/slog"

	"kasa/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeySession   ContextKey = "session"

	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored by the request-id middleware, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no request id is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetSession returns the session decoded by the session middleware, or a new Home session.
func GetSession(c echo.Context) entity.Session {
	if session, ok := c.Get(string(KeySession)).(entity.Session); ok {
		return session
	}

	return entity.NewSession()
}

// SetSession replaces the session that will be written back to the client.
func SetSession(c echo.Context, session entity.Session) {
	c.Set(string(KeySession), session)
}
