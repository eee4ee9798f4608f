package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"quadralink/models"
	"quadralink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 12
	tokenTTL   = 24 * time.Hour
)

// Register creates an account. The email must match the institution's
// configured pattern, which is what scopes accounts to campus addresses.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	inst, err := s.Institutions.GetByShortcode(ctx, req.InstitutionShortcode)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, &ValidationError{Message: "invalid institution"}
	}

	emailRegex, err := regexp.Compile(inst.EmailPattern)
	if err != nil {
		return nil, fmt.Errorf("institution %s has a malformed email pattern: %w", inst.Shortcode, err)
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, &ValidationError{Message: "email does not match institution format"}
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: "email taken"}
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.HasRole(role, models.RoleStudent, models.RoleCounselor, models.RoleModerator) {
		return nil, &ValidationError{Message: "invalid role"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:            uuid.New().String(),
		Role:          role,
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Pseudonym:     req.Pseudonym,
		InstitutionID: inst.ID,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger().Info("user registered",
		zap.String("userId", u.ID),
		zap.String("institution", inst.Shortcode),
		zap.String("role", u.Role),
	)
	return u, nil
}

// Authenticate verifies credentials and issues a signed token carrying the
// user's id and role.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if u.IsBanned || u.IsDeleted {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{ID: u.ID, Token: token, Role: u.Role}, nil
}

// GetUserByID retrieves a user profile.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListInstitutions returns the registrable institutions.
func (s *DefaultUserService) ListInstitutions(ctx context.Context) ([]models.Institution, error) {
	return s.Institutions.GetAll(ctx)
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
