package service

import (
	"context"
	"errors"
	"fmt"

	"userhub/internal/auth"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

// branch is the outcome of the email lookup that decides between logging an
// existing user in and registering a new one.
type branch int

const (
	branchLogin branch = iota
	branchRegister
)

// AuthResult is returned on successful authentication. Registered reports
// whether this request created the user.
type AuthResult struct {
	Token      string
	User       *model.User
	Registered bool
}

// AuthService handles the merged login-or-register flow.
type AuthService interface {
	LoginOrRegister(ctx context.Context, name, email, password string) (*AuthResult, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// LoginOrRegister looks the email up and either authenticates the existing
// user or registers a new one. Both branches end with a freshly issued token.
func (s *authService) LoginOrRegister(ctx context.Context, name, email, password string) (*AuthResult, error) {
	b, existing, err := s.resolve(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	switch b {
	case branchLogin:
		return s.login(existing, password)
	default:
		return s.register(ctx, name, email, password)
	}
}

// resolve decides which branch handles the request.
func (s *authService) resolve(ctx context.Context, email string) (branch, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return branchRegister, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return branchLogin, user, nil
}

func (s *authService) login(user *model.User, password string) (*AuthResult, error) {
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *authService) register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" {
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
	// A concurrent request may register the same email between the lookup and
	// this insert; the unique index turns that into ErrDuplicateEmail.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user, Registered: true}, nil
}
