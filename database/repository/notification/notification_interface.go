package notificationRepo

import (
	"context"

	"quadralink/models"
)

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(ctx context.Context, n *models.Notification) error
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	// MarkRead flags a notification as read, scoped to its owner.
	MarkRead(ctx context.Context, id, userID string) error
}
