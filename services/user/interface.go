package user

import (
	"context"

	institutionRepo "quadralink/database/repository/institution"
	userRepo "quadralink/database/repository/user"
	"quadralink/models"

	"go.uber.org/zap"
)

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Firstname            string `json:"firstname" binding:"required"`
	Lastname             string `json:"lastname" binding:"required"`
	Email                string `json:"email" binding:"required"`
	Password             string `json:"password" binding:"required"`
	InstitutionShortcode string `json:"institutionShortcode" binding:"required"`
	Role                 string `json:"role"`
	Pseudonym            string `json:"pseudonym"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

// UserService handles registration and authentication.
type UserService interface {
	// Register creates an account after validating the email against the
	// institution's pattern.
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	// Authenticate verifies credentials and issues a JWT.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user profile.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// ListInstitutions returns the registrable institutions.
	ListInstitutions(ctx context.Context) ([]models.Institution, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	Institutions institutionRepo.InstitutionRepository
	Logger       *zap.Logger
}
