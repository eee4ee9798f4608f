package models

import "time"

// Booking status values.
const (
	BookingPending     = "pending"
	BookingAccepted    = "accepted"
	BookingDeclined    = "declined"
	BookingRescheduled = "rescheduled"
	BookingCancelled   = "cancelled"
)

// Booking is a counseling session request occupying the half-open interval
// [StartTime, EndTime). The "councillorId" field name is kept for wire
// compatibility with existing clients.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	CouncillorID     string    `bson:"councillorId" json:"councillorId"`
	StartTime        time.Time `bson:"startTime" json:"startTime"`
	EndTime          time.Time `bson:"endTime" json:"endTime"`
	Status           string    `bson:"status" json:"status"`
	NotificationSent bool      `bson:"notificationSent" json:"notificationSent"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Duration returns the booked session length.
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Schedule is one page of a counselor's upcoming sessions.
type Schedule struct {
	Data         []Booking           `json:"data"`
	Total        int64               `json:"total"`
	Availability map[string][]string `json:"availability"`
}
