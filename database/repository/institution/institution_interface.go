package institutionRepo

import (
	"context"

	"quadralink/models"
)

// InstitutionRepository defines methods for institution data access.
type InstitutionRepository interface {
	// GetByShortcode retrieves an institution by its registration shortcode.
	GetByShortcode(ctx context.Context, shortcode string) (*models.Institution, error)
	// GetAll retrieves all institutions.
	GetAll(ctx context.Context) ([]models.Institution, error)
	// Create inserts a new institution record.
	Create(ctx context.Context, inst *models.Institution) error
}
