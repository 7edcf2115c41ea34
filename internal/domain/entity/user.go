// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the account entity. It owns its credential hash and the list of
// session tokens that are currently accepted on its behalf.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // Given name.
	Surname      string    // Family name.
	Email        string    // Login identifier; unique, stored lowercase.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Tokens       []string  // Session registry: every token string accepted for this user.
	Avatar       []byte    // Optional profile image bytes.
	AvatarKey    string    // Object key of the avatar copy held by the image store.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// AddToken appends a freshly issued session token to the registry.
// Tokens are kept in insertion order and never deduplicated; every login
// event gets its own entry.
func (u *User) AddToken(token string) {
	u.Tokens = append(u.Tokens, token)
}

// RemoveToken drops every entry that exactly matches the given token,
// revoking that session. Other sessions are untouched.
func (u *User) RemoveToken(token string) {
	u.Tokens = slices.DeleteFunc(u.Tokens, func(t string) bool {
		return t == token
	})
}

// ClearTokens revokes every session at once.
func (u *User) ClearTokens() {
	u.Tokens = nil
}

// HasToken reports whether the given token string is currently accepted.
// A token whose signature still verifies but which has been removed from
// the registry must not authenticate.
func (u *User) HasToken(token string) bool {
	return slices.Contains(u.Tokens, token)
}
