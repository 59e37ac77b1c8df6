package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"moodly-be/internal/apperrors"
	"moodly-be/internal/jwt"
	"moodly-be/internal/models"
	"moodly-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. Validation happens before any
// storage access; a duplicate non-deleted email is a conflict.
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		return nil, apperrors.NewValidation("nome, email and senha are required")
	}
	if len(req.Senha) < 6 {
		return nil, apperrors.NewValidation("senha must be at least 6 characters")
	}

	// Check if a non-deleted user already holds this email
	_, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, apperrors.NewConflict("email already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternal(fmt.Errorf("failed to check existing email: %w", err))
	}

	// Hash password with a random per-call salt (cost 10)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternal(fmt.Errorf("failed to hash password: %w", err))
	}

	userID, err := s.userRepo.Create(req.Nome, req.Email, string(hashedPassword))
	if err != nil {
		return nil, apperrors.NewInternal(fmt.Errorf("failed to create user: %w", err))
	}

	return &models.RegisterResponse{
		Message: "user registered successfully",
		UserID:  userID,
	}, nil
}

// Login authenticates a user and returns user info with a signed token.
// Unknown email and wrong password produce the same error, so a caller
// cannot probe which field was wrong.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Senha == "" {
		return nil, apperrors.NewValidation("email and senha are required")
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, apperrors.NewInternal(fmt.Errorf("failed to find user: %w", err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, apperrors.NewUnauthorized("invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &models.LoginResponse{
		Message: "login successful",
		Token:   token,
		User: models.UserSummary{
			ID:    user.ID,
			Nome:  user.Nome,
			Email: user.Email,
		},
	}, nil
}
