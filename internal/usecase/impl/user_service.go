// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var validate = validator.New()

// userService implements the UserUsecase interface.
type userService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
	imageStore service.ImageStore
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and opens its first session. The hash is
// computed once, before anything is persisted.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Surname:      strings.TrimSpace(input.Surname),
		Email:        email,
		PasswordHash: hashed,
	}

	var token string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		token, err = srv.tokens.Issue(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue session token")
		}

		user.AddToken(token)

		return errors.Wrap(userRepo.Save(ctx, user), "failed to store session token")
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: usecase.NewUserView(user), Token: token}, nil
}

// Login verifies credentials and appends a fresh session token. Wrong email
// and wrong password collapse to the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrLoginFailed
	}

	var user *entity.User
	var token string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrLoginFailed
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !srv.hasher.Check(input.Password, found.PasswordHash) {
			return domainerrors.ErrLoginFailed
		}

		token, err = srv.tokens.Issue(found.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue session token")
		}

		found.AddToken(token)
		if err := userRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to store session token")
		}

		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: usecase.NewUserView(user), Token: token}, nil
}

// Logout revokes exactly the presented token; the user's other sessions
// stay valid.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	return srv.withUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		user.RemoveToken(token)

		return errors.Wrap(userRepo.Save(ctx, user), "failed to revoke session token")
	})
}

// LogoutAll clears the whole session registry.
func (srv *userService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return srv.withUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		user.ClearTokens()

		return errors.Wrap(userRepo.Save(ctx, user), "failed to revoke session tokens")
	})
}

// List returns every user.
func (srv *userService) List(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewUserView(user))
	}

	return views, nil
}

// GetByID returns a single user.
func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewUserView(user), nil
}

// Update applies a partial update. The allowlist gate runs before the record
// is loaded, so a rejected update never touches the store.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*usecase.UserView, error) {
	if !usecase.FieldsAllowed(usecase.FieldNames(fields), usecase.UserUpdatableFields) {
		return nil, domainerrors.ErrInvalidUpdates
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := srv.applyUserFields(user, fields); err != nil {
			return err
		}

		if err := userRepo.Save(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", id))

	return usecase.NewUserView(updated), nil
}

// Delete removes the account and, best effort, its stored avatar copy.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	var avatarKey string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		avatarKey = user.AvatarKey

		return errors.Wrap(userRepo.Delete(ctx, id), "failed to delete user")
	})
	if err != nil {
		return err
	}

	if avatarKey != "" {
		if err := srv.imageStore.Remove(ctx, avatarKey); err != nil {
			srv.log(ctx).Warn("Failed to remove avatar from image store", slog.Any("userID", id), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// UploadAvatar runs the bytes through the image pipeline, then stores them
// on the account.
func (srv *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (*service.StoredImage, error) {
	stored, err := srv.imageStore.Store(ctx, data, contentType)
	if err != nil {
		return nil, err
	}

	var previousKey string
	err = srv.withUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		previousKey = user.AvatarKey
		user.Avatar = data
		user.AvatarKey = stored.Key

		return errors.Wrap(userRepo.Save(ctx, user), "failed to save avatar")
	})
	if err != nil {
		// The account was not updated; drop the orphaned blob.
		if removeErr := srv.imageStore.Remove(ctx, stored.Key); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned avatar", slog.String("key", stored.Key), slog.Any("error", removeErr))
		}

		return nil, err
	}

	if previousKey != "" && previousKey != stored.Key {
		if err := srv.imageStore.Remove(ctx, previousKey); err != nil {
			srv.log(ctx).Warn("Failed to remove previous avatar", slog.String("key", previousKey), slog.Any("error", err))
		}
	}

	return stored, nil
}

// GetAvatar returns the avatar bytes, or a not-found error when the user has
// none.
func (srv *userService) GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if len(user.Avatar) == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return user.Avatar, nil
}

// DeleteAvatar clears the avatar from the account and the image store.
func (srv *userService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	var previousKey string
	err := srv.withUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		previousKey = user.AvatarKey
		user.Avatar = nil
		user.AvatarKey = ""

		return errors.Wrap(userRepo.Save(ctx, user), "failed to clear avatar")
	})
	if err != nil {
		return err
	}

	if previousKey != "" {
		if err := srv.imageStore.Remove(ctx, previousKey); err != nil {
			srv.log(ctx).Warn("Failed to remove avatar from image store", slog.Any("userID", userID), slog.Any("error", err))
		}
	}

	return nil
}

// withUser loads the user inside a transaction and hands it to fn.
func (srv *userService) withUser(ctx context.Context, userID uuid.UUID, fn func(user *entity.User, userRepo repository.UserRepository) error) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		return fn(user, userRepo)
	})
}

// applyUserFields assigns allowlisted fields onto the entity. The password
// goes through the policy check and the hasher; it is never assigned raw.
func (srv *userService) applyUserFields(user *entity.User, fields map[string]any) error {
	for name, value := range fields {
		str, ok := value.(string)
		if !ok {
			return domainerrors.ErrValidation.WithMessage(name + " must be a string")
		}

		switch name {
		case "name":
			user.Name = strings.TrimSpace(str)
		case "surname":
			user.Surname = strings.TrimSpace(str)
		case "email":
			email, err := normalizeEmail(str)
			if err != nil {
				return err
			}
			user.Email = email
		case "password":
			if err := srv.hasher.ValidatePassword(str); err != nil {
				return err
			}
			hashed, err := srv.hasher.Hash(str)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			user.PasswordHash = hashed
		}
	}

	return nil
}

// normalizeEmail lowercases, trims and validates an email address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", domainerrors.ErrValidation.WithMessage("email must be a valid email address")
	}

	return email, nil
}
