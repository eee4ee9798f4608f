package models

import "time"

// Counselor status values. A busy or offline counselor does not take new
// booking requests.
const (
	CounselorAvailable = "available"
	CounselorBusy      = "busy"
	CounselorOffline   = "offline"
)

// Weekdays lists the availability map keys in calendar order (week starts
// on Sunday).
var Weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Counselor is a counseling profile attached to a user account.
// Availability maps weekday names to same-day "HH:MM-HH:MM" ranges (24-hour,
// zero-padded). Ranges within a day must not overlap each other; the
// counselor service validates this on write.
type Counselor struct {
	ID              string              `bson:"id" json:"id"`
	UserID          string              `bson:"userId" json:"userId"`
	Availability    map[string][]string `bson:"availability" json:"availability"`
	Status          string              `bson:"status" json:"status"`
	MaxSessions     int                 `bson:"maxSessions" json:"maxSessions"`         // non-cancelled bookings per calendar week
	SessionDuration int                 `bson:"sessionDuration" json:"sessionDuration"` // max minutes per booking
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}
