package handler

import (
	"log/slog"
	"net/http"

	"roost/internal/delivery/http/response"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApartmentHandler holds dependencies for listing-related handlers.
type ApartmentHandler struct {
	uc     usecase.ApartmentUsecase
	logger *slog.Logger
}

// NewApartmentHandler is the constructor for ApartmentHandler, injected by Fx.
func NewApartmentHandler(uc usecase.ApartmentUsecase, logger *slog.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the listing creation request.
func (h *ApartmentHandler) Create(c echo.Context) error {
	var input *usecase.CreateApartmentInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "invalid apartment input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "invalid apartment input")
	}

	apartment, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, apartment)
}

// List returns every listing.
func (h *ApartmentHandler) List(c echo.Context) error {
	apartments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, apartments)
}

// GetByID returns a single listing by its identifier.
func (h *ApartmentHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	apartment, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, apartment)
}

// Update applies a partial update to a listing.
func (h *ApartmentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return response.BadRequest(c, "invalid update payload")
	}

	apartment, err := h.uc.Update(c.Request().Context(), id, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, apartment)
}

// Delete removes a listing.
func (h *ApartmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "apartment deleted"})
}
