package counselorRepo

import (
	"context"

	"quadralink/models"
)

// CounselorRepository defines methods for counselor profile data access.
type CounselorRepository interface {
	// GetByID retrieves a counselor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	// GetByUserID retrieves the counselor profile owned by a user.
	GetByUserID(ctx context.Context, userID string) (*models.Counselor, error)
	// GetAll retrieves all counselor profiles.
	GetAll(ctx context.Context) ([]models.Counselor, error)
	// Create inserts a new counselor record.
	Create(ctx context.Context, c *models.Counselor) error
	// SetAvailability replaces the counselor's weekly availability map.
	SetAvailability(ctx context.Context, id string, availability map[string][]string) error
	// SetStatus updates the counselor's presence status.
	SetStatus(ctx context.Context, id string, status string) error
	// SetLimits updates the weekly session cap and maximum session duration.
	SetLimits(ctx context.Context, id string, maxSessions, sessionDuration int) error
}
