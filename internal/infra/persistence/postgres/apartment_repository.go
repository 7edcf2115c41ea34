package postgres

import (
	"context"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apartmentRepository implements repository.ApartmentRepository using GORM.
type apartmentRepository struct {
	db *gorm.DB
}

// NewApartmentRepository is the constructor for apartmentRepository.
func NewApartmentRepository(db *gorm.DB) repository.ApartmentRepository {
	return &apartmentRepository{db: db}
}

// FindByID retrieves a single listing by its unique ID.
func (repo *apartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	var apartmentM model.ApartmentModel
	if err := repo.db.WithContext(ctx).First(&apartmentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find apartment by id")
	}

	return toApartmentDomain(&apartmentM), nil
}

// FindAll retrieves every listing, ordered by creation time.
func (repo *apartmentRepository) FindAll(ctx context.Context) ([]*entity.Apartment, error) {
	var models []model.ApartmentModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list apartments")
	}

	apartments := make([]*entity.Apartment, 0, len(models))
	for i := range models {
		apartments = append(apartments, toApartmentDomain(&models[i]))
	}

	return apartments, nil
}

// Create persists a new listing.
func (repo *apartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	apartmentM := fromApartmentDomain(apartment)
	if apartmentM.ID == uuid.Nil {
		apartmentM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(apartmentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessage("missing required apartment information")
		}

		return errors.Wrap(err, "failed to create apartment")
	}

	apartment.ID = apartmentM.ID
	apartment.CreatedAt = apartmentM.CreatedAt
	apartment.UpdatedAt = apartmentM.UpdatedAt

	return nil
}

// Save writes the whole listing row back. The later save wins against
// concurrent writers.
func (repo *apartmentRepository) Save(ctx context.Context, apartment *entity.Apartment) error {
	apartmentM := fromApartmentDomain(apartment)

	if err := repo.db.WithContext(ctx).Save(apartmentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessage("missing required apartment information")
		}

		return errors.Wrap(err, "failed to save apartment")
	}

	apartment.UpdatedAt = apartmentM.UpdatedAt

	return nil
}

// Delete removes the listing.
func (repo *apartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ApartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete apartment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApartmentNotFound
	}

	return nil
}

// --- Mapper functions ---

func toApartmentDomain(data *model.ApartmentModel) *entity.Apartment {
	if data == nil {
		return nil
	}

	return &entity.Apartment{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Rent:      data.Rent,
		Bedrooms:  data.Bedrooms,
		Bathrooms: data.Bathrooms,
		Contact:   data.Contact,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromApartmentDomain(apartment *entity.Apartment) *model.ApartmentModel {
	return &model.ApartmentModel{
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
