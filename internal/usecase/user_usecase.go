// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"roost/internal/domain/entity"
	"roost/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserView is the outward representation of a user. It never carries the
// password hash or the token list.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserView maps a user entity to its outward representation.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:        user.ID,
		Name:      user.Name,
		Surname:   user.Surname,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// AuthOutput is returned by registration and login: the user plus the
// session token issued for this event.
type AuthOutput struct {
	User  *UserView `json:"user"`
	Token string    `json:"token"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates an account and opens its first session.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and opens an additional session. Each login
	// appends its own token; existing sessions stay valid.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout revokes exactly the presented token.
	Logout(ctx context.Context, userID uuid.UUID, token string) error

	// LogoutAll revokes every session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// List returns all users.
	List(ctx context.Context) ([]*UserView, error)

	// GetByID returns a single user.
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)

	// Update applies a partial update. Every key in fields must be in the
	// user allowlist or the whole update is rejected before the record is
	// even loaded. A password update is re-hashed before persisting.
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*UserView, error)

	// Delete removes the account.
	Delete(ctx context.Context, id uuid.UUID) error

	// UploadAvatar runs the image through the upload pipeline and stores the
	// bytes on the account.
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (*service.StoredImage, error)

	// GetAvatar returns the stored avatar bytes.
	GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, error)

	// DeleteAvatar removes the avatar from the account and the image store.
	DeleteAvatar(ctx context.Context, userID uuid.UUID) error
}
