package notification

import (
	"context"

	"quadralink/models"
)

// Notifier delivers a message to a user. Delivery is best-effort: callers
// treat a returned error as log-and-continue, never as an operation failure.
type Notifier interface {
	Notify(ctx context.Context, userID, message, severity string) error
}

// NotificationService is the full notification surface: delivery plus the
// per-user inbox backed by the notifications collection.
type NotificationService interface {
	Notifier
	// List returns the user's notifications, newest first.
	List(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, id, userID string) error
}
