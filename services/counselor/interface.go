package counselor

import (
	"context"

	counselorRepo "quadralink/database/repository/counselor"
	userRepo "quadralink/database/repository/user"
	"quadralink/models"

	"go.uber.org/zap"
)

// CreateProfileRequest carries the fields for a new counselor profile.
// Zero limits fall back to the platform defaults.
type CreateProfileRequest struct {
	UserID          string              `json:"userId" binding:"required"`
	Availability    map[string][]string `json:"availability"`
	MaxSessions     int                 `json:"maxSessions"`
	SessionDuration int                 `json:"sessionDuration"`
}

// CounselorService manages counselor profiles: the availability table,
// presence status and session limits the booking engine validates against.
type CounselorService interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*models.Counselor, error)
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	List(ctx context.Context) ([]models.Counselor, error)
	// UpdateAvailability replaces the weekly availability map after
	// validating weekday keys, range format and per-day self-overlap.
	UpdateAvailability(ctx context.Context, id string, availability map[string][]string) error
	SetStatus(ctx context.Context, id, status string) error
	SetLimits(ctx context.Context, id string, maxSessions, sessionDuration int) error
}

// DefaultCounselorService is the production implementation.
type DefaultCounselorService struct {
	Repo   counselorRepo.CounselorRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}
