package booking

import (
	"strings"
	"time"

	"quadralink/models"
)

// validateInterval runs the time checks that do not depend on other
// bookings: ordering, duration cap and the counselor's availability table.
func (e *DefaultBookingEngine) validateInterval(c *models.Counselor, start, end time.Time) error {
	if !end.After(start) {
		return newError(CodeInvalidInput, "end time must be after start time")
	}
	if end.Sub(start) > time.Duration(c.SessionDuration)*time.Minute {
		return newError(CodeInvalidInput, "session must not exceed %d minutes", c.SessionDuration)
	}
	if !withinAvailability(c.Availability, start, end, e.Location) {
		return newError(CodeConflict, "time slot not available")
	}
	return nil
}

// withinAvailability reports whether [start, end) falls inside one of the
// counselor's declared ranges for the weekday of start. Comparison is
// lexicographic on zero-padded "HH:MM", which matches numeric order for
// same-day ranges; ranges do not span midnight.
func withinAvailability(availability map[string][]string, start, end time.Time, loc *time.Location) bool {
	day := start.In(loc).Weekday().String()
	startHour := start.In(loc).Format("15:04")
	endHour := end.In(loc).Format("15:04")

	for _, r := range availability[day] {
		slotStart, slotEnd, ok := SplitRange(r)
		if !ok {
			continue
		}
		if slotStart <= startHour && endHour <= slotEnd {
			return true
		}
	}
	return false
}

// SplitRange parses an "HH:MM-HH:MM" availability range.
func SplitRange(r string) (start, end string, ok bool) {
	parts := strings.SplitN(r, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// weekWindow returns the calendar week containing t: Sunday 00:00:00.000
// through Saturday 23:59:59.999 in loc.
func weekWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	weekStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -int(t.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
	return weekStart, weekEnd
}
