package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cake_orders/internal/model"
	"cake_orders/internal/repository"
	"cake_orders/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("could not validate token")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo     repository.UserRepository
	jwtUtil      *utils.JWTUtil
	initialAdmin string
}

// NewAuthService creates a new AuthService. initialAdmin names the one
// username that registers with the admin role; no endpoint changes roles
// afterwards.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, initialAdmin string) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtUtil:      jwtUtil,
		initialAdmin: initialAdmin,
	}
}

// Register creates a new user account with the default role
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userRole := model.RoleUser
	if s.initialAdmin != "" && username == s.initialAdmin {
		userRole = model.RoleAdmin
		log.Printf("INFO: User %s is being registered as ADMIN via INITIAL_ADMIN_USERNAME.", username)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         userRole,
	}

	// Uniqueness rides on the database constraint so concurrent registrations
	// of the same name cannot both slip through.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to the current user record. The
// subject is re-read from the store on every call so the role is always
// fresh and tokens for deleted accounts stop working.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	username, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding token subject: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: subject no longer exists", ErrUnauthorized)
	}
	return user, nil
}
