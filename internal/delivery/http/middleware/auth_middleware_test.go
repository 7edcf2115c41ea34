package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"roost/config"
	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"
	"roost/internal/infra/auth"
	"roost/internal/infra/persistence/memory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	mw     *AuthMiddleware
	store  *memory.Store
	tokens service.TokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := memory.New()
	mw := NewAuthMiddleware(AuthMiddlewareParams{Tokens: tokens, UserRepo: store})

	return &authFixture{mw: mw, store: store, tokens: tokens}
}

// seedUser creates a user with one live session and returns it with the token.
func (f *authFixture) seedUser(t *testing.T) (*entity.User, string) {
	t.Helper()

	user := &entity.User{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, f.store.Create(context.Background(), user))

	token, err := f.tokens.Issue(user.ID)
	require.NoError(t, err)

	user.AddToken(token)
	require.NoError(t, f.store.Save(context.Background(), user))

	return user, token
}

func (f *authFixture) do(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := f.mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, nextCalled, c
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	fx := newAuthFixture(t)
	user, token := fx.seedUser(t)

	rec, nextCalled, c := fx.do(t, "Bearer "+token)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)

	authed := deliverycontext.CurrentUser(c)
	require.NotNil(t, authed)
	assert.Equal(t, user.ID, authed.ID)
	assert.Equal(t, token, deliverycontext.CurrentToken(c))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := newAuthFixture(t)

	rec, nextCalled, _ := fx.do(t, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"please authenticate"}`, rec.Body.String())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	fx := newAuthFixture(t)
	_, token := fx.seedUser(t)

	rec, nextCalled, _ := fx.do(t, "Token "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	fx := newAuthFixture(t)

	rec, nextCalled, _ := fx.do(t, "Bearer not-a-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	fx := newAuthFixture(t)
	user, token := fx.seedUser(t)

	// Revoke the session; the signature still verifies.
	user.RemoveToken(token)
	require.NoError(t, fx.store.Save(context.Background(), user))

	rec, nextCalled, _ := fx.do(t, "Bearer "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"please authenticate"}`, rec.Body.String())
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	fx := newAuthFixture(t)
	user, token := fx.seedUser(t)

	require.NoError(t, fx.store.Delete(context.Background(), user.ID))

	rec, nextCalled, _ := fx.do(t, "Bearer "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
