// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (bcrypt), keeping the
// domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// random per call, so hashing the same password twice yields different
	// digests.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A malformed hash
	// results in false, never a panic.
	Check(password, hash string) bool

	// ValidatePassword applies the password policy: at least 8 characters
	// and no "password" substring, case-insensitive.
	ValidatePassword(password string) error
}
