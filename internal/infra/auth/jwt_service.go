// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"roost/config"
	"roost/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. Tokens are signed HS256 and carry the user ID as
// their only claim; revocation is handled by the per-user token list, not
// by expiry.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService. An empty signing secret
// is a configuration fault and fails construction; there is no weak-signing
// fallback.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Token)}, nil
}

// Issue creates a signed token whose sole payload claim is the user ID.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and decodes the subject claim. Every failure
// collapses to service.ErrInvalidToken so callers cannot tell a bad
// signature from a malformed payload.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
