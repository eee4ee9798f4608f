package counselor

import (
	"context"

	"quadralink/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Platform defaults for new profiles.
const (
	defaultMaxSessions     = 5
	defaultSessionDuration = 30 // minutes
)

// CreateProfile attaches a counselor profile to an existing user account.
func (s *DefaultCounselorService) CreateProfile(ctx context.Context, req CreateProfileRequest) (*models.Counselor, error) {
	u, err := s.Users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &ValidationError{Message: "user not found"}
	}

	existing, err := s.Repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: "user already has a counselor profile"}
	}

	availability := req.Availability
	if availability == nil {
		availability = map[string][]string{}
	}
	if err := ValidateAvailability(availability); err != nil {
		return nil, err
	}

	maxSessions := req.MaxSessions
	if maxSessions == 0 {
		maxSessions = defaultMaxSessions
	}
	sessionDuration := req.SessionDuration
	if sessionDuration == 0 {
		sessionDuration = defaultSessionDuration
	}
	if maxSessions < 1 || sessionDuration < 1 {
		return nil, &ValidationError{Message: "maxSessions and sessionDuration must be positive"}
	}

	c := &models.Counselor{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		Availability:    availability,
		Status:          models.CounselorAvailable,
		MaxSessions:     maxSessions,
		SessionDuration: sessionDuration,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger().Info("counselor profile created",
		zap.String("counselorId", c.ID),
		zap.String("userId", c.UserID),
	)
	return c, nil
}

// GetByID retrieves a counselor profile.
func (s *DefaultCounselorService) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// List returns all counselor profiles.
func (s *DefaultCounselorService) List(ctx context.Context) ([]models.Counselor, error) {
	counselors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if counselors == nil {
		counselors = []models.Counselor{}
	}
	return counselors, nil
}

// UpdateAvailability replaces the weekly availability map.
func (s *DefaultCounselorService) UpdateAvailability(ctx context.Context, id string, availability map[string][]string) error {
	if availability == nil {
		availability = map[string][]string{}
	}
	if err := ValidateAvailability(availability); err != nil {
		return err
	}
	if c, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	} else if c == nil {
		return ErrNotFound
	}
	return s.Repo.SetAvailability(ctx, id, availability)
}

// SetStatus updates the counselor's presence status.
func (s *DefaultCounselorService) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.CounselorAvailable, models.CounselorBusy, models.CounselorOffline:
	default:
		return &ValidationError{Message: "invalid status"}
	}
	if c, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	} else if c == nil {
		return ErrNotFound
	}
	return s.Repo.SetStatus(ctx, id, status)
}

// SetLimits updates the weekly session cap and maximum session duration.
func (s *DefaultCounselorService) SetLimits(ctx context.Context, id string, maxSessions, sessionDuration int) error {
	if maxSessions < 1 || sessionDuration < 1 {
		return &ValidationError{Message: "maxSessions and sessionDuration must be positive"}
	}
	if c, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	} else if c == nil {
		return ErrNotFound
	}
	return s.Repo.SetLimits(ctx, id, maxSessions, sessionDuration)
}

func (s *DefaultCounselorService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
