package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// apartmentService implements the ApartmentUsecase interface.
type apartmentService struct {
	txManager     repository.TransactionManager
	apartmentRepo repository.ApartmentRepository
	logger        *slog.Logger
}

// ApartmentServiceParams holds dependencies for apartmentService, injected by Fx.
type ApartmentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ApartmentRepo repository.ApartmentRepository
	Logger        *slog.Logger
}

// NewApartmentService is the constructor for apartmentService.
func NewApartmentService(params ApartmentServiceParams) usecase.ApartmentUsecase {
	return &apartmentService{
		txManager:     params.TxManager,
		apartmentRepo: params.ApartmentRepo,
		logger:        params.Logger,
	}
}

func (srv *apartmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new listing from already-bound input. Name and address
// must be non-empty after trimming; the numeric fields are required by the
// binding layer.
func (srv *apartmentService) Create(ctx context.Context, input *usecase.CreateApartmentInput) (*usecase.ApartmentView, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" {
		return nil, domainerrors.ErrValidation.WithMessage("name and address are required")
	}
	if input.Rent == nil || input.Bedrooms == nil || input.Bathrooms == nil {
		return nil, domainerrors.ErrValidation.WithMessage("rent, bedrooms and bathrooms are required")
	}

	apartment := &entity.Apartment{
		Name:      name,
		Address:   address,
		Rent:      *input.Rent,
		Bedrooms:  *input.Bedrooms,
		Bathrooms: *input.Bathrooms,
		Contact:   strings.TrimSpace(input.Contact),
		Available: strings.TrimSpace(input.Available),
	}

	if err := srv.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, errors.Wrap(err, "failed to create apartment")
	}

	srv.log(ctx).Info("Apartment created", slog.Any("apartmentID", apartment.ID))

	return usecase.NewApartmentView(apartment), nil
}

// List returns every listing.
func (srv *apartmentService) List(ctx context.Context) ([]*usecase.ApartmentView, error) {
	apartments, err := srv.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list apartments")
	}

	views := make([]*usecase.ApartmentView, 0, len(apartments))
	for _, apartment := range apartments {
		views = append(views, usecase.NewApartmentView(apartment))
	}

	return views, nil
}

// GetByID returns a single listing.
func (srv *apartmentService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.ApartmentView, error) {
	apartment, err := srv.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find apartment")
	}

	return usecase.NewApartmentView(apartment), nil
}

// Update applies a partial update gated by the apartment allowlist. A
// rejected update never loads the record.
func (srv *apartmentService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*usecase.ApartmentView, error) {
	if !usecase.FieldsAllowed(usecase.FieldNames(fields), usecase.ApartmentUpdatableFields) {
		return nil, domainerrors.ErrInvalidUpdates
	}

	var updated *entity.Apartment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apartmentRepo := repoFactory.ApartmentRepo()

		apartment, err := apartmentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrApartmentNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find apartment")
		}

		if err := applyApartmentFields(apartment, fields); err != nil {
			return err
		}

		if err := apartmentRepo.Save(ctx, apartment); err != nil {
			return errors.Wrap(err, "failed to save apartment")
		}

		updated = apartment

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Apartment updated", slog.Any("apartmentID", id))

	return usecase.NewApartmentView(updated), nil
}

// Delete removes the listing. There is no soft delete.
func (srv *apartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.apartmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete apartment")
	}

	srv.log(ctx).Info("Apartment deleted", slog.Any("apartmentID", id))

	return nil
}

// applyApartmentFields assigns allowlisted fields onto the entity, checking
// each value's type. JSON numbers arrive as float64.
func applyApartmentFields(apartment *entity.Apartment, fields map[string]any) error {
	for name, value := range fields {
		switch name {
		case "name", "address", "contact", "available":
			str, ok := value.(string)
			if !ok {
				return domainerrors.ErrValidation.WithMessage(name + " must be a string")
			}
			str = strings.TrimSpace(str)
			if (name == "name" || name == "address") && str == "" {
				return domainerrors.ErrValidation.WithMessage(name + " cannot be empty")
			}
			switch name {
			case "name":
				apartment.Name = str
			case "address":
				apartment.Address = str
			case "contact":
				apartment.Contact = str
			case "available":
				apartment.Available = str
			}
		case "rent", "bedrooms", "bathrooms":
			num, ok := value.(float64)
			if !ok {
				return domainerrors.ErrValidation.WithMessage(name + " must be a number")
			}
			switch name {
			case "rent":
				apartment.Rent = num
			case "bedrooms":
				apartment.Bedrooms = int(num)
			case "bathrooms":
				apartment.Bathrooms = num
			}
		}
	}

	return nil
}
