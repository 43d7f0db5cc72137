package user

import (
	"context"
	"fmt"
	"time"

	userRepo "slotify/database/repository/user"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// UserService handles account registration and authentication.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, string, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a customer account and returns a signed auth token.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, string, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, "", fmt.Errorf("email %s is already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.BusinessID, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

// Authenticate verifies credentials and returns a signed auth token.
func (s *DefaultUserService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.BusinessID, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

// GetByID fetches an account by ID.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}
