package service

import (
	"context"
	"errors"
	"time"

	"github.com/recipebox/recipebox-go/internal/crypto"
	"github.com/recipebox/recipebox-go/internal/model"
	"github.com/recipebox/recipebox-go/internal/repository"
)

var (
	ErrMissingFields      = errors.New("please enter all fields")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.TokenResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return model.TokenResponse{}, ErrMissingFields
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.TokenResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.TokenResponse{}, ErrEmailTaken
		}
		return model.TokenResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

// Login authenticates a user and returns a session token. An unknown email
// and a wrong password both yield ErrInvalidCredentials, so the response does
// not reveal which check failed.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.TokenResponse{}, ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

// GetProfile retrieves a user by ID and returns their data minus the password hash.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
