package usecase

import (
	"context"
	"time"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateApartmentInput defines the data required to create a listing.
// Rent, bedrooms and bathrooms are pointers so that "missing" can be told
// apart from a legitimate zero.
type CreateApartmentInput struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Rent      *float64 `json:"rent" validate:"required"`
	Bedrooms  *int     `json:"bedrooms" validate:"required"`
	Bathrooms *float64 `json:"bathrooms" validate:"required"`
	Contact   string   `json:"contact"`
	Available string   `json:"available"`
}

// ApartmentView is the outward representation of a listing.
type ApartmentView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Rent      float64   `json:"rent"`
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms float64   `json:"bathrooms"`
	Contact   string    `json:"contact,omitempty"`
	Available string    `json:"available,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewApartmentView maps a listing entity to its outward representation.
func NewApartmentView(apartment *entity.Apartment) *ApartmentView {
	if apartment == nil {
		return nil
	}

	return &ApartmentView{
		ID:        apartment.ID,
		Name:      apartment.Name,
		Address:   apartment.Address,
		Rent:      apartment.Rent,
		Bedrooms:  apartment.Bedrooms,
		Bathrooms: apartment.Bathrooms,
		Contact:   apartment.Contact,
		Available: apartment.Available,
		CreatedAt: apartment.CreatedAt,
		UpdatedAt: apartment.UpdatedAt,
	}
}

// ApartmentUsecase defines the interface for listing operations. Every
// operation requires an authenticated caller; none of them care which one.
type ApartmentUsecase interface {
	// Create persists a new listing.
	Create(ctx context.Context, input *CreateApartmentInput) (*ApartmentView, error)

	// List returns all listings.
	List(ctx context.Context) ([]*ApartmentView, error)

	// GetByID returns a single listing.
	GetByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)

	// Update applies a partial update gated by the apartment allowlist.
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*ApartmentView, error)

	// Delete removes the listing immediately and irreversibly.
	Delete(ctx context.Context, id uuid.UUID) error
}
