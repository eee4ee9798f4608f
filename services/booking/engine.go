package booking

import (
	"context"
	"time"

	"quadralink/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Allowed status transitions for UpdateBookingStatus. A rescheduled booking
// stays eligible for further reschedule; cancelled is terminal and handled
// separately in CancelBooking.
var transitions = map[string][]string{
	models.BookingAccepted:    {models.BookingPending},
	models.BookingDeclined:    {models.BookingPending},
	models.BookingRescheduled: {models.BookingPending, models.BookingAccepted, models.BookingDeclined, models.BookingRescheduled},
}

func canTransition(from, to string) bool {
	for _, f := range transitions[to] {
		if f == from {
			return true
		}
	}
	return false
}

// CreateBooking places a pending booking. The overlap and weekly-cap checks
// run in the same transaction as the insert so two concurrent requests for
// conflicting slots cannot both succeed.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, requesterID, councillorID string, start, end time.Time) (*models.Booking, error) {
	counselor, err := e.Counselors.GetByID(ctx, councillorID)
	if err != nil {
		return nil, err
	}
	if counselor == nil {
		return nil, newError(CodeNotFound, "councillor not found")
	}
	// busy and offline both block; the availability table is irrelevant
	// while the counselor is away.
	if counselor.Status != models.CounselorAvailable {
		return nil, newError(CodeConflict, "councillor is %s", counselor.Status)
	}
	if err := e.validateInterval(counselor, start, end); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:               uuid.New().String(),
		UserID:           requesterID,
		CouncillorID:     councillorID,
		StartTime:        start,
		EndTime:          end,
		Status:           models.BookingPending,
		NotificationSent: false,
	}

	err = e.Bookings.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := e.checkSlotFree(txCtx, councillorID, start, end, ""); err != nil {
			return err
		}
		if err := e.checkWeeklyCap(txCtx, counselor, start); err != nil {
			return err
		}
		return e.Bookings.Create(txCtx, b)
	})
	if err != nil {
		return nil, err
	}

	e.Logger.Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("councillorId", councillorID),
		zap.String("userId", requesterID),
		zap.Time("startTime", start),
	)

	counselorName := e.userName(ctx, counselor.UserID, "the counselor")
	requesterName := e.userName(ctx, requesterID, "A student")
	e.notify(ctx, requesterID,
		"Your booking with "+counselorName+" is pending.", models.SeverityInfo)
	e.notify(ctx, counselor.UserID,
		requesterName+" has requested a booking on "+e.formatTime(start)+".", models.SeverityInfo)

	return b, nil
}

// checkSlotFree fails with a conflict if a non-cancelled booking overlaps
// [start, end). excludeID keeps a rescheduled booking from conflicting with
// its own prior interval.
func (e *DefaultBookingEngine) checkSlotFree(ctx context.Context, councillorID string, start, end time.Time, excludeID string) error {
	existing, err := e.Bookings.FindOverlapping(ctx, councillorID, start, end, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return newError(CodeConflict, "slot overlaps with existing booking")
	}
	return nil
}

// checkWeeklyCap fails with a conflict once the counselor's calendar week
// already holds maxSessions non-cancelled bookings.
func (e *DefaultBookingEngine) checkWeeklyCap(ctx context.Context, c *models.Counselor, start time.Time) error {
	weekStart, weekEnd := weekWindow(start, e.Location)
	count, err := e.Bookings.CountInWeek(ctx, c.ID, weekStart, weekEnd)
	if err != nil {
		return err
	}
	if count >= int64(c.MaxSessions) {
		return newError(CodeConflict, "councillor has reached maximum %d sessions this week", c.MaxSessions)
	}
	return nil
}

// UpdateBookingStatus accepts, declines or reschedules a booking. Reschedule
// re-runs interval and overlap validation against the new slot, excluding
// the booking itself from the overlap check.
func (e *DefaultBookingEngine) UpdateBookingStatus(ctx context.Context, bookingID, newStatus string, newStart, newEnd *time.Time) (*models.Booking, error) {
	b, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, newError(CodeNotFound, "booking not found")
	}
	counselor, err := e.Counselors.GetByID(ctx, b.CouncillorID)
	if err != nil {
		return nil, err
	}
	if counselor == nil {
		return nil, newError(CodeNotFound, "councillor not found")
	}

	switch newStatus {
	case models.BookingAccepted, models.BookingDeclined, models.BookingRescheduled:
	default:
		return nil, newError(CodeInvalidInput, "invalid status %q", newStatus)
	}
	if !canTransition(b.Status, newStatus) {
		return nil, newError(CodeConflict, "cannot mark a %s booking as %s", b.Status, newStatus)
	}

	counselorName := e.userName(ctx, counselor.UserID, "the counselor")

	if newStatus == models.BookingRescheduled {
		if newStart == nil || newEnd == nil {
			return nil, newError(CodeInvalidInput, "new times required for reschedule")
		}
		start, end := *newStart, *newEnd
		if err := e.validateInterval(counselor, start, end); err != nil {
			return nil, err
		}

		err = e.Bookings.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := e.checkSlotFree(txCtx, b.CouncillorID, start, end, b.ID); err != nil {
				return err
			}
			return e.Bookings.Reschedule(txCtx, b.ID, start, end)
		})
		if err != nil {
			return nil, err
		}

		b.StartTime = start
		b.EndTime = end
		b.Status = models.BookingRescheduled
		b.NotificationSent = false

		e.Logger.Info("booking rescheduled",
			zap.String("bookingId", b.ID),
			zap.Time("startTime", start),
		)
		e.notify(ctx, b.UserID,
			"Your booking has been rescheduled to "+e.formatTime(start)+" by "+counselorName+".", models.SeverityInfo)
		e.notify(ctx, counselor.UserID,
			"You rescheduled a booking to "+e.formatTime(start)+".", models.SeverityInfo)
		return b, nil
	}

	if err := e.Bookings.UpdateStatus(ctx, b.ID, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus
	b.NotificationSent = false

	severity := models.SeverityInfo
	if newStatus == models.BookingDeclined {
		severity = models.SeverityWarning
	}
	when := e.formatTime(b.StartTime)

	e.Logger.Info("booking status updated",
		zap.String("bookingId", b.ID),
		zap.String("status", newStatus),
	)
	e.notify(ctx, b.UserID,
		"Your booking on "+when+" has been "+newStatus+" by "+counselorName+".", severity)
	e.notify(ctx, counselor.UserID,
		"You "+newStatus+" a booking on "+when+".", severity)
	return b, nil
}

// CancelBooking cancels a booking on behalf of its owner or a
// moderator/admin. Cancelled bookings drop out of the overlap and weekly-cap
// checks, so the slot frees up immediately.
func (e *DefaultBookingEngine) CancelBooking(ctx context.Context, bookingID, actorID string, actorRoles ...string) (*models.Booking, error) {
	b, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, newError(CodeNotFound, "booking not found")
	}

	privileged := false
	for _, role := range actorRoles {
		if role == models.RoleModerator || role == models.RoleAdmin {
			privileged = true
			break
		}
	}
	if b.UserID != actorID && !privileged {
		return nil, newError(CodeForbidden, "can only cancel own booking")
	}
	if b.Status == models.BookingCancelled {
		return nil, newError(CodeConflict, "booking is already cancelled")
	}

	if err := e.Bookings.UpdateStatus(ctx, b.ID, models.BookingCancelled); err != nil {
		return nil, err
	}
	b.Status = models.BookingCancelled
	b.NotificationSent = false

	e.Logger.Info("booking cancelled",
		zap.String("bookingId", b.ID),
		zap.String("actorId", actorID),
	)

	when := e.formatTime(b.StartTime)
	e.notify(ctx, b.UserID,
		"Your booking on "+when+" has been cancelled.", models.SeverityWarning)
	if counselor, err := e.Counselors.GetByID(ctx, b.CouncillorID); err == nil && counselor != nil {
		actorName := e.userName(ctx, actorID, "A member")
		e.notify(ctx, counselor.UserID,
			actorName+" cancelled their booking on "+when+".", models.SeverityWarning)
	}
	return b, nil
}

// GetSchedule returns a page of the counselor's non-cancelled bookings
// ordered by start time ascending. Page defaults to 1, limit to 10, and
// limit is capped to keep unbounded queries off the table.
func (e *DefaultBookingEngine) GetSchedule(ctx context.Context, councillorID string, page, limit int) (*models.Schedule, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	counselor, err := e.Counselors.GetByID(ctx, councillorID)
	if err != nil {
		return nil, err
	}
	if counselor == nil {
		return nil, newError(CodeNotFound, "councillor not found")
	}

	offset := int64(page-1) * int64(limit)
	bookings, total, err := e.Bookings.ListByCounselor(ctx, councillorID, offset, int64(limit))
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return &models.Schedule{
		Data:         bookings,
		Total:        total,
		Availability: counselor.Availability,
	}, nil
}

// notify delivers a message best-effort. Notification failures never fail
// the booking operation.
func (e *DefaultBookingEngine) notify(ctx context.Context, userID, message, severity string) {
	if err := e.Notifier.Notify(ctx, userID, message, severity); err != nil {
		e.Logger.Warn("notification delivery failed",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
}

// userName resolves a display name for notification text, falling back to a
// generic label when the lookup fails.
func (e *DefaultBookingEngine) userName(ctx context.Context, userID, fallback string) string {
	u, err := e.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return fallback
	}
	return u.DisplayName()
}

func (e *DefaultBookingEngine) formatTime(t time.Time) string {
	return t.In(e.Location).Format("Monday, 2 Jan 2006 at 15:04")
}
