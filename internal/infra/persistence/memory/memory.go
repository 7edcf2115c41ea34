// Package memory implements an in-memory persistence layer for development
// and testing. A single mutex guards all state, which both keeps the fake
// simple and gives token-list read-modify-write the same last-write-wins
// behavior the SQL layer has.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"

	"github.com/google/uuid"
)

// Store implements the user and apartment repositories over process memory.
type Store struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*entity.User
	apartments map[uuid.UUID]*entity.Apartment
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		users:      make(map[uuid.UUID]*entity.User),
		apartments: make(map[uuid.UUID]*entity.Apartment),
	}
}

// Ensure interfaces are met.
var (
	_ repository.UserRepository      = (*Store)(nil)
	_ repository.ApartmentRepository = (*apartmentView)(nil)
)

// --- UserRepository ---

// FindByID retrieves a user by ID.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(user), nil
}

// FindByEmail retrieves a user by email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindAll lists users ordered by creation time.
func (s *Store) FindAll(ctx context.Context) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, copyUser(user))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

// Create stores a new user, enforcing email uniqueness like the database
// unique index does.
func (s *Store) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = copyUser(user)

	return nil
}

// Save overwrites the whole user record. Last write wins.
func (s *Store) Save(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return domainerrors.ErrEmailTaken
		}
	}

	user.UpdatedAt = time.Now()
	s.users[user.ID] = copyUser(user)

	return nil
}

// Delete removes a user.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)

	return nil
}

// --- ApartmentRepository ---

// Apartments returns the apartment repository view of the store. The view
// type exists because both repositories want a FindByID method.
func (s *Store) Apartments() repository.ApartmentRepository {
	return (*apartmentView)(s)
}

type apartmentView Store

func (v *apartmentView) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	apartment, ok := v.apartments[id]
	if !ok {
		return nil, repository.ErrApartmentNotFound
	}

	copied := *apartment

	return &copied, nil
}

func (v *apartmentView) FindAll(ctx context.Context) ([]*entity.Apartment, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	apartments := make([]*entity.Apartment, 0, len(v.apartments))
	for _, apartment := range v.apartments {
		copied := *apartment
		apartments = append(apartments, &copied)
	}
	sort.Slice(apartments, func(i, j int) bool {
		return apartments[i].CreatedAt.Before(apartments[j].CreatedAt)
	})

	return apartments, nil
}

func (v *apartmentView) Create(ctx context.Context, apartment *entity.Apartment) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if apartment.ID == uuid.Nil {
		apartment.ID = uuid.New()
	}
	now := time.Now()
	apartment.CreatedAt = now
	apartment.UpdatedAt = now
	copied := *apartment
	v.apartments[apartment.ID] = &copied

	return nil
}

func (v *apartmentView) Save(ctx context.Context, apartment *entity.Apartment) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	apartment.UpdatedAt = time.Now()
	copied := *apartment
	v.apartments[apartment.ID] = &copied

	return nil
}

func (v *apartmentView) Delete(ctx context.Context, id uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.apartments[id]; !ok {
		return repository.ErrApartmentNotFound
	}
	delete(v.apartments, id)

	return nil
}

func copyUser(user *entity.User) *entity.User {
	copied := *user
	copied.Tokens = append([]string(nil), user.Tokens...)
	copied.Avatar = append([]byte(nil), user.Avatar...)

	return &copied
}
