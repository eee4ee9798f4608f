package bookingRepo

import (
	"context"
	"time"

	"quadralink/models"
)

// BookingRepository defines methods for booking data access. Every method
// honors a session context produced by WithTransaction, so validation reads
// and the subsequent write can share one transaction.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(ctx context.Context, b *models.Booking) error
	// UpdateStatus sets the booking status and clears notificationSent.
	UpdateStatus(ctx context.Context, id string, status string) error
	// Reschedule moves a booking to a new interval, sets status to
	// rescheduled and clears notificationSent.
	Reschedule(ctx context.Context, id string, start, end time.Time) error
	// FindOverlapping returns a non-cancelled booking for the counselor
	// whose [startTime, endTime) interval overlaps [start, end), or nil.
	// excludeID, when non-empty, removes that booking from consideration.
	FindOverlapping(ctx context.Context, councillorID string, start, end time.Time, excludeID string) (*models.Booking, error)
	// CountInWeek counts non-cancelled bookings for the counselor whose
	// startTime falls within [weekStart, weekEnd].
	CountInWeek(ctx context.Context, councillorID string, weekStart, weekEnd time.Time) (int64, error)
	// ListByCounselor returns a page of non-cancelled bookings ordered by
	// startTime ascending, plus the total non-cancelled count.
	ListByCounselor(ctx context.Context, councillorID string, offset, limit int64) ([]models.Booking, int64, error)
	// WithTransaction runs fn inside a single transaction. Repository calls
	// made with the context passed to fn participate in it.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
