package repository

import (
	"context"
	"errors"
	"time"

	"github.com/recipebox/recipebox-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user storage operations.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository backed by the given store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts a new user and sets the assigned ID and creation time on the
// user struct. Fails with ErrDuplicateEmail if the email is taken (exact,
// case-sensitive match).
func (r *UserRepository) Create(_ context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[user.Email]; exists {
		return ErrDuplicateEmail
	}

	user.ID = s.nextUserID
	user.CreatedAt = time.Now().UTC()
	s.nextUserID++

	stored := *user
	s.users[user.ID] = &stored
	s.emails[user.Email] = user.ID
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := *s.users[id]
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := *stored
	return &user, nil
}
