package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any token that does not parse,
// does not verify, or does not carry a usable subject claim. Callers never
// see partial claim data.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and verifying session
// bearer tokens. Tokens are stateless signatures over the user ID; they
// carry no expiry and stay valid until removed from the user's token list.
type TokenService interface {
	// Issue produces a signed token whose sole claim is the user ID.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature and returns the embedded user ID, or
	// ErrInvalidToken. Signature validity alone does not authenticate a
	// request; the caller must still confirm the token against the user's
	// session registry.
	Verify(token string) (uuid.UUID, error)
}
