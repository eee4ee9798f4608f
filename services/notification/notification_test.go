package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quadralink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNotificationRepo struct {
	notifications []models.Notification
	createErr     error
}

func (r *memNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *memNotificationRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].UserID == userID {
			r.notifications[i].Read = true
			return nil
		}
	}
	return nil
}

type memPusher struct {
	pushed map[string][][]byte
	err    error
}

func (p *memPusher) Push(ctx context.Context, userID string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	if p.pushed == nil {
		p.pushed = make(map[string][][]byte)
	}
	p.pushed[userID] = append(p.pushed[userID], payload)
	return nil
}

func TestNotifyPersistsThenPushes(t *testing.T) {
	repo := &memNotificationRepo{}
	pusher := &memPusher{}
	svc := NewDefaultNotificationService(repo, pusher, nil)

	err := svc.Notify(context.Background(), "user-1", "Your booking is pending.", models.SeverityInfo)
	require.NoError(t, err)

	require.Len(t, repo.notifications, 1)
	stored := repo.notifications[0]
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "Your booking is pending.", stored.Message)
	assert.False(t, stored.Read)

	require.Len(t, pusher.pushed["user-1"], 1)
	var pushed models.Notification
	require.NoError(t, json.Unmarshal(pusher.pushed["user-1"][0], &pushed))
	assert.Equal(t, stored.ID, pushed.ID)
	assert.Equal(t, stored.Message, pushed.Message)
}

func TestNotifyPushFailureIsSwallowed(t *testing.T) {
	repo := &memNotificationRepo{}
	pusher := &memPusher{err: errors.New("channel gone")}
	svc := NewDefaultNotificationService(repo, pusher, nil)

	err := svc.Notify(context.Background(), "user-1", "hello", models.SeverityInfo)
	assert.NoError(t, err)
	assert.Len(t, repo.notifications, 1)
}

func TestNotifyPersistFailurePropagates(t *testing.T) {
	repo := &memNotificationRepo{createErr: errors.New("write failed")}
	pusher := &memPusher{}
	svc := NewDefaultNotificationService(repo, pusher, nil)

	err := svc.Notify(context.Background(), "user-1", "hello", models.SeverityInfo)
	assert.Error(t, err)
	assert.Empty(t, pusher.pushed)
}

func TestNotifyNormalizesSeverity(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewDefaultNotificationService(repo, &memPusher{}, nil)

	require.NoError(t, svc.Notify(context.Background(), "user-1", "hello", "critical"))
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.SeverityInfo, repo.notifications[0].Severity)
}

func TestListNewestFirst(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewDefaultNotificationService(repo, &memPusher{}, nil)
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, "user-1", "first", models.SeverityInfo))
	require.NoError(t, svc.Notify(ctx, "user-1", "second", models.SeverityWarning))
	require.NoError(t, svc.Notify(ctx, "user-2", "other inbox", models.SeverityInfo))

	list, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Message)
	assert.Equal(t, "first", list[1].Message)
}

func TestListEmptyInbox(t *testing.T) {
	svc := NewDefaultNotificationService(&memNotificationRepo{}, &memPusher{}, nil)

	list, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewDefaultNotificationService(repo, &memPusher{}, nil)
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, "user-1", "hello", models.SeverityInfo))
	id := repo.notifications[0].ID

	// Someone else's id+user pair does not flip the flag.
	require.NoError(t, svc.MarkRead(ctx, id, "user-2"))
	assert.False(t, repo.notifications[0].Read)

	require.NoError(t, svc.MarkRead(ctx, id, "user-1"))
	assert.True(t, repo.notifications[0].Read)
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "notify:user-1", ChannelFor("user-1"))
}
