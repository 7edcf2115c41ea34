// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/delivery/http/response"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account creation request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output)
}

// Login handles the credential check and opens a new session.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Logout revokes the session token that authenticated this request.
// Every other session of the same user stays open.
func (h *UserHandler) Logout(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)
	token := deliverycontext.CurrentToken(c)
	if user == nil || token == "" {
		return response.Unauthorized(c)
	}

	if err := h.uc.Logout(c.Request().Context(), user.ID, token); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "logged out"})
}

// LogoutAll revokes every session of the authenticated user.
func (h *UserHandler) LogoutAll(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c)
	}

	if err := h.uc.LogoutAll(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "logged out everywhere"})
}

// List returns every account.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, users)
}

// Me returns the profile of the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c)
	}

	return response.JSON(c, http.StatusOK, usecase.NewUserView(user))
}

// GetByID returns a single account by its identifier.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed identifier cannot match anything.
		return response.NotFound(c)
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

// Update applies a partial update to an account.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return response.BadRequest(c, "invalid update payload")
	}

	user, err := h.uc.Update(c.Request().Context(), id, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "user deleted"})
}

// UploadAvatar accepts a multipart image and attaches it to the
// authenticated user.
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c)
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.BadRequest(c, "avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "unable to read avatar file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "unable to read avatar file")
	}

	stored, err := h.uc.UploadAvatar(c.Request().Context(), user.ID, data, fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, stored)
}

// GetAvatar serves the stored avatar of any account.
func (h *UserHandler) GetAvatar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	data, err := h.uc.GetAvatar(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

// DeleteAvatar removes the avatar of the authenticated user.
func (h *UserHandler) DeleteAvatar(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c)
	}

	if err := h.uc.DeleteAvatar(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "avatar deleted"})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
