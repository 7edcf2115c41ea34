// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/service"
)

// defaultBcryptCost matches the work factor the original deployment used.
const defaultBcryptCost = 8

const minPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation, so equal inputs produce distinct digests.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash. bcrypt's own
// comparison is used rather than string equality; a malformed hash simply
// fails the check.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePassword enforces the password policy.
func (h *bcryptHasher) ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidation.WithMessage("password must be at least 8 characters")
	}
	if strings.Contains(strings.ToLower(password), "password") {
		return domainerrors.ErrValidation.WithMessage(`password cannot contain the word "password"`)
	}

	return nil
}
