// Package context carries request-scoped values between the delivery layer
// and everything below it.
package context

import (
	"context"
	"log/slog"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUser is the echo context key for the authenticated user.
	KeyUser = "user"

	// KeyToken is the echo context key for the raw bearer token that
	// authenticated this request. Handlers need it for self-logout.
	KeyToken = "token"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// SetIdentity attaches the authenticated user and the raw token to the echo
// context.
func SetIdentity(c echo.Context, user *entity.User, token string) {
	c.Set(KeyUser, user)
	c.Set(KeyToken, token)
}

// CurrentUser returns the authenticated user attached by the auth
// middleware, or nil when the request was not authenticated.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(KeyUser).(*entity.User)

	return user
}

// CurrentToken returns the raw bearer token that authenticated the request.
func CurrentToken(c echo.Context) string {
	token, _ := c.Get(KeyToken).(string)

	return token
}

// GetRequestID extracts the request ID from echo.Context, generating one
// when absent.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger from the context,
// falling back to the given default.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
