package notification

import (
	"context"
	"encoding/json"

	notificationRepo "quadralink/database/repository/notification"
	"quadralink/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const inboxPageSize = 50

// DefaultNotificationService persists every notification, then pushes the
// payload to the user's live channel. The row is the source of truth; a
// failed push only means the user reads it from the inbox later.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Pusher Pusher
	Logger *zap.Logger
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, pusher Pusher, logger *zap.Logger) *DefaultNotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultNotificationService{Repo: repo, Pusher: pusher, Logger: logger}
}

// Notify stores the notification and pushes it best-effort.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, message, severity string) error {
	if severity != models.SeverityInfo && severity != models.SeverityWarning {
		severity = models.SeverityInfo
	}

	n := &models.Notification{
		ID:       uuid.New().String(),
		UserID:   userID,
		Message:  message,
		Severity: severity,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return err
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := s.Pusher.Push(ctx, userID, payload); err != nil {
		s.Logger.Warn("push delivery failed",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
	return nil
}

// List returns the user's notifications, newest first.
func (s *DefaultNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.Repo.ListByUser(ctx, userID, inboxPageSize)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.Repo.MarkRead(ctx, id, userID)
}
