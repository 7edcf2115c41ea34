// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware authenticates requests from the Authorization header.
// Every failure is the same 401: the response never reveals whether the
// signature, the user lookup, or the session registry check failed.
type AuthMiddleware struct {
	tokens   service.TokenService
	userRepo repository.UserRepository
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Tokens   service.TokenService
	UserRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokens: params.Tokens, userRepo: params.UserRepo}
}

// Authenticate validates the bearer token and attaches the user identity
// and the raw token to the request context. Verification runs from scratch
// on every request so a revoked token is rejected immediately.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c)
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			return response.Unauthorized(c)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			// A deleted user and a forged token get the same answer.
			return response.Unauthorized(c)
		}

		// Signature alone is not enough: the token must still be in the
		// user's session registry.
		if !user.HasToken(token) {
			return response.Unauthorized(c)
		}

		deliverycontext.SetIdentity(c, user, token)

		return next(c)
	}
}
