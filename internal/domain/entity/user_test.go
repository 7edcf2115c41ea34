package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_AddToken_KeepsOrderAndDuplicates(t *testing.T) {
	user := &User{}

	user.AddToken("first")
	user.AddToken("second")
	user.AddToken("first")

	assert.Equal(t, []string{"first", "second", "first"}, user.Tokens)
}

func TestUser_RemoveToken_RemovesAllMatches(t *testing.T) {
	user := &User{Tokens: []string{"a", "b", "a", "c"}}

	user.RemoveToken("a")

	assert.Equal(t, []string{"b", "c"}, user.Tokens)
}

func TestUser_RemoveToken_ExactMatchOnly(t *testing.T) {
	user := &User{Tokens: []string{"token", "token2"}}

	user.RemoveToken("token")

	assert.Equal(t, []string{"token2"}, user.Tokens)
}

func TestUser_RemoveToken_UnknownTokenIsNoop(t *testing.T) {
	user := &User{Tokens: []string{"a", "b"}}

	user.RemoveToken("missing")

	assert.Equal(t, []string{"a", "b"}, user.Tokens)
}

func TestUser_ClearTokens(t *testing.T) {
	user := &User{Tokens: []string{"a", "b"}}

	user.ClearTokens()

	assert.Empty(t, user.Tokens)
	assert.False(t, user.HasToken("a"))
}

func TestUser_HasToken(t *testing.T) {
	user := &User{Tokens: []string{"a"}}

	assert.True(t, user.HasToken("a"))
	assert.False(t, user.HasToken("b"))
}
