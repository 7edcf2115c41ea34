package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "roost/internal/domain/errors"
	"roost/internal/infra/persistence/memory"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type apartmentFixture struct {
	svc   usecase.ApartmentUsecase
	store *memory.Store
}

func newApartmentFixture(t *testing.T) *apartmentFixture {
	t.Helper()

	store := memory.New()
	svc := NewApartmentService(ApartmentServiceParams{
		TxManager:     memory.NewTransactionManager(store),
		ApartmentRepo: store.Apartments(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &apartmentFixture{svc: svc, store: store}
}

func (f *apartmentFixture) create(t *testing.T) *usecase.ApartmentView {
	t.Helper()

	view, err := f.svc.Create(context.Background(), &usecase.CreateApartmentInput{
		Name:      "Sunny Loft",
		Address:   "1 Main St",
		Rent:      ptr(1200.0),
		Bedrooms:  ptr(2),
		Bathrooms: ptr(1.5),
		Contact:   "landlord@example.com",
		Available: "now",
	})
	require.NoError(t, err)

	return view
}

func TestApartmentService_Create(t *testing.T) {
	fx := newApartmentFixture(t)

	view := fx.create(t)

	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "Sunny Loft", view.Name)
	assert.Equal(t, 1200.0, view.Rent)
	assert.Equal(t, 2, view.Bedrooms)
	assert.Equal(t, 1.5, view.Bathrooms)
}

func TestApartmentService_Create_ZeroRentIsValid(t *testing.T) {
	fx := newApartmentFixture(t)

	view, err := fx.svc.Create(context.Background(), &usecase.CreateApartmentInput{
		Name:      "Free Room",
		Address:   "2 Side St",
		Rent:      ptr(0.0),
		Bedrooms:  ptr(1),
		Bathrooms: ptr(1.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.Rent)
}

func TestApartmentService_Create_MissingFields(t *testing.T) {
	fx := newApartmentFixture(t)

	tests := []struct {
		name  string
		input *usecase.CreateApartmentInput
	}{
		{
			name: "missing rent",
			input: &usecase.CreateApartmentInput{
				Name: "Loft", Address: "1 Main St", Bedrooms: ptr(1), Bathrooms: ptr(1.0),
			},
		},
		{
			name: "blank name",
			input: &usecase.CreateApartmentInput{
				Name: "  ", Address: "1 Main St", Rent: ptr(100.0), Bedrooms: ptr(1), Bathrooms: ptr(1.0),
			},
		},
		{
			name: "blank address",
			input: &usecase.CreateApartmentInput{
				Name: "Loft", Address: "", Rent: ptr(100.0), Bedrooms: ptr(1), Bathrooms: ptr(1.0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.Create(context.Background(), tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestApartmentService_GetByID(t *testing.T) {
	fx := newApartmentFixture(t)
	created := fx.create(t)

	view, err := fx.svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.ID)

	_, err = fx.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestApartmentService_List(t *testing.T) {
	fx := newApartmentFixture(t)
	fx.create(t)
	fx.create(t)

	views, err := fx.svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestApartmentService_Update(t *testing.T) {
	fx := newApartmentFixture(t)
	created := fx.create(t)

	view, err := fx.svc.Update(context.Background(), created.ID, map[string]any{
		"rent":     1500.0,
		"bedrooms": 3.0,
		"contact":  "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, view.Rent)
	assert.Equal(t, 3, view.Bedrooms)
	assert.Equal(t, "new@example.com", view.Contact)
}

func TestApartmentService_Update_DisallowedFieldLeavesStoreUntouched(t *testing.T) {
	fx := newApartmentFixture(t)
	created := fx.create(t)

	_, err := fx.svc.Update(context.Background(), created.ID, map[string]any{
		"rent":     1500.0,
		"landlord": "someone",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpdates)

	view, getErr := fx.svc.GetByID(context.Background(), created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 1200.0, view.Rent)
}

func TestApartmentService_Update_TypeMismatch(t *testing.T) {
	fx := newApartmentFixture(t)
	created := fx.create(t)

	_, err := fx.svc.Update(context.Background(), created.ID, map[string]any{
		"rent": "a lot",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestApartmentService_Delete(t *testing.T) {
	fx := newApartmentFixture(t)
	created := fx.create(t)

	require.NoError(t, fx.svc.Delete(context.Background(), created.ID))

	_, err := fx.svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.ErrorIs(t, fx.svc.Delete(context.Background(), created.ID), domainerrors.ErrNotFound)
}
