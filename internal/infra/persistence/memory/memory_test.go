package memory

import (
	"context"
	"testing"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UserCRUD(t *testing.T) {
	store := New()
	ctx := context.Background()

	user := &entity.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, store.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)

	byEmail, err := store.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	found.Name = "Grace"
	require.NoError(t, store.Save(ctx, found))

	again, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", again.Name)

	require.NoError(t, store.Delete(ctx, user.ID))
	_, err = store.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, store.Delete(ctx, user.ID), repository.ErrUserNotFound)
}

func TestStore_Create_EnforcesEmailUniqueness(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &entity.User{Email: "ada@example.com"}))

	err := store.Create(ctx, &entity.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestStore_Save_EnforcesEmailUniqueness(t *testing.T) {
	store := New()
	ctx := context.Background()

	first := &entity.User{Email: "first@example.com"}
	second := &entity.User{Email: "second@example.com"}
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	second.Email = "first@example.com"
	assert.ErrorIs(t, store.Save(ctx, second), domainerrors.ErrEmailTaken)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	user := &entity.User{Email: "ada@example.com", Tokens: []string{"t1"}}
	require.NoError(t, store.Create(ctx, user))

	found, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)

	// Mutating the returned value must not touch the stored record.
	found.Tokens = append(found.Tokens, "t2")
	found.Name = "Changed"

	again, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, again.Tokens)
	assert.Empty(t, again.Name)
}

func TestStore_ApartmentCRUD(t *testing.T) {
	store := New()
	repo := store.Apartments()
	ctx := context.Background()

	apartment := &entity.Apartment{Name: "Loft", Address: "1 Main St", Rent: 1200}
	require.NoError(t, repo.Create(ctx, apartment))
	assert.NotEqual(t, uuid.Nil, apartment.ID)

	found, err := repo.FindByID(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loft", found.Name)

	found.Rent = 1500
	require.NoError(t, repo.Save(ctx, found))

	again, err := repo.FindByID(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, again.Rent)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, apartment.ID))
	_, err = repo.FindByID(ctx, apartment.ID)
	assert.ErrorIs(t, err, repository.ErrApartmentNotFound)
}

func TestTransactionManager_FactoryBinding(t *testing.T) {
	store := New()
	tm := NewTransactionManager(store)

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		require.NoError(t, f.UserRepo().Create(context.Background(), &entity.User{Email: "a@example.com"}))

		return f.ApartmentRepo().Create(context.Background(), &entity.Apartment{Name: "Loft", Address: "1 Main St"})
	})
	require.NoError(t, err)

	users, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	apartments, err := store.Apartments().FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, apartments, 1)
}
