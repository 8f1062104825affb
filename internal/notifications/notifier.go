// Package notifications publishes engagement events to Redis pub/sub
// channels so downstream consumers (feeds, mailers) can react without the
// request path waiting on them.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Event kinds published on a channel owner's stream.
const (
	EventNewComment    = "comment.created"
	EventNewSubscriber = "subscription.created"
	EventVideoLiked    = "like.video"
	EventVideoPublish  = "video.published"
)

// Event is the payload published for one engagement action.
type Event struct {
	Kind    string `json:"kind"`
	ActorID uint   `json:"actor_id"`
	VideoID uint   `json:"video_id,omitempty"`
}

// Notifier publishes engagement events into per-user Redis channels. All
// methods are no-ops when Redis is unavailable; notifications are best
// effort and never block or fail a request.
type Notifier struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewNotifier(rdb *redis.Client, logger *slog.Logger) *Notifier {
	return &Notifier{rdb: rdb, logger: logger}
}

func userChannel(userID uint) string {
	return fmt.Sprintf("events:user:%d", userID)
}

// PublishToUser sends an event to the given user's channel.
func (n *Notifier) PublishToUser(ctx context.Context, userID uint, event Event) {
	if n == nil || n.rdb == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := n.rdb.Publish(ctx, userChannel(userID), payload).Err(); err != nil {
		n.logger.WarnContext(ctx, "event publish failed",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}

// StartPatternSubscriber subscribes to every user event channel and calls
// onMessage per event. The goroutine exits when ctx is cancelled.
func (n *Notifier) StartPatternSubscriber(
	ctx context.Context,
	onMessage func(channel string, event Event),
) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "events:user:*")
	ch := sub.Channel()

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				onMessage(msg.Channel, event)
			}
		}
	}()

	return nil
}
