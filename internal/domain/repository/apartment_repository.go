package repository

import (
	"context"
	"errors"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApartmentNotFound is returned when no listing matches the identifier.
var ErrApartmentNotFound = errors.New("apartment not found")

// ApartmentRepository defines the standard operations for listing persistence.
type ApartmentRepository interface {
	// FindByID retrieves a single listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)

	// FindAll retrieves every listing, ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Apartment, error)

	// Create persists a new listing.
	Create(ctx context.Context, apartment *entity.Apartment) error

	// Save writes the whole listing record back. Last write wins.
	Save(ctx context.Context, apartment *entity.Apartment) error

	// Delete removes the listing. Deletion is immediate and irreversible.
	Delete(ctx context.Context, id uuid.UUID) error
}
