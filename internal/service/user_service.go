package service

import (
	"context"
	"encoding/json"
	"time"

	"userhub/internal/auth"
	"userhub/internal/cache"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

const (
	userListCacheKey = "users:all"
	userListCacheTTL = 5 * time.Minute
)

// UserUpdateParams carries the optional fields of a user update. At least one
// must be set.
type UserUpdateParams struct {
	Name     string
	Email    string
	Password string
}

// UserService exposes user CRUD operations. Passwords are hashed here, before
// anything reaches the repository.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, name, email, password string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UserUpdateParams) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher and cache.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	if data, _ := s.cache.Get(ctx, userListCacheKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		_ = s.cache.Set(ctx, userListCacheKey, payload, userListCacheTTL)
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidation("All fields are required")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, userListCacheKey)
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, params UserUpdateParams) (*model.User, error) {
	if params.Name == "" && params.Email == "" && params.Password == "" {
		return nil, apperrors.NewValidation("At least one field is required")
	}

	update := repository.UserUpdate{
		Name:  params.Name,
		Email: params.Email,
	}
	if params.Password != "" {
		hashed, err := s.hasher.Hash(params.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = hashed
	}

	user, err := s.repo.FindByIDAndUpdate(ctx, id, update)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, userListCacheKey)
	return user, nil
}
