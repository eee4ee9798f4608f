package booking

import (
	"context"
	"time"

	bookingRepo "quadralink/database/repository/booking"
	counselorRepo "quadralink/database/repository/counselor"
	userRepo "quadralink/database/repository/user"
	"quadralink/models"
	"quadralink/services/notification"

	"go.uber.org/zap"
)

// BookingEngine validates and mutates session requests against counselor
// availability and existing bookings.
type BookingEngine interface {
	// CreateBooking places a pending booking for the requester if the slot
	// passes availability, overlap and weekly-cap validation.
	CreateBooking(ctx context.Context, requesterID, councillorID string, start, end time.Time) (*models.Booking, error)
	// UpdateBookingStatus accepts, declines or reschedules a booking.
	// newStart/newEnd are required for reschedule and ignored otherwise.
	UpdateBookingStatus(ctx context.Context, bookingID, newStatus string, newStart, newEnd *time.Time) (*models.Booking, error)
	// CancelBooking cancels a booking on behalf of its owner or a
	// moderator/admin. The freed slot becomes bookable immediately.
	CancelBooking(ctx context.Context, bookingID, actorID string, actorRoles ...string) (*models.Booking, error)
	// GetSchedule returns a page of the counselor's non-cancelled bookings
	// ordered by start time, with the raw availability map.
	GetSchedule(ctx context.Context, councillorID string, page, limit int) (*models.Schedule, error)
}

// DefaultBookingEngine is the production implementation.
type DefaultBookingEngine struct {
	Counselors counselorRepo.CounselorRepository
	Bookings   bookingRepo.BookingRepository
	Users      userRepo.UserRepository
	Notifier   notification.Notifier
	// Location is the reference zone for weekday and availability
	// derivation (see BOOKING_TIMEZONE).
	Location *time.Location
	Logger   *zap.Logger
}

// NewDefaultBookingEngine wires a booking engine. A nil location falls back
// to server-local time, a nil logger to a no-op logger.
func NewDefaultBookingEngine(
	counselors counselorRepo.CounselorRepository,
	bookings bookingRepo.BookingRepository,
	users userRepo.UserRepository,
	notifier notification.Notifier,
	loc *time.Location,
	logger *zap.Logger,
) *DefaultBookingEngine {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingEngine{
		Counselors: counselors,
		Bookings:   bookings,
		Users:      users,
		Notifier:   notifier,
		Location:   loc,
		Logger:     logger,
	}
}
