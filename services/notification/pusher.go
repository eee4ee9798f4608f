package notification

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Pusher fans a payload out to a user's live connections. The WebSocket
// gateway process subscribes to the per-user channel and forwards frames;
// this service never holds socket state itself.
type Pusher interface {
	Push(ctx context.Context, userID string, payload []byte) error
}

// ChannelFor returns the Redis pub/sub channel carrying a user's pushes.
func ChannelFor(userID string) string {
	return "notify:" + userID
}

// RedisPusher publishes payloads on per-user Redis channels.
type RedisPusher struct {
	Client *redis.Client
}

func (p *RedisPusher) Push(ctx context.Context, userID string, payload []byte) error {
	return p.Client.Publish(ctx, ChannelFor(userID), payload).Err()
}
