package notifications

import (
	"context"
	"testing"
	"time"

	"viewtube/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_NilRedisIsNoop(t *testing.T) {
	t.Parallel()

	n := NewNotifier(nil, middleware.Logger)
	// Must not panic or block.
	n.PublishToUser(context.Background(), 1, Event{Kind: EventNewSubscriber, ActorID: 2})
	require.NoError(t, n.StartPatternSubscriber(context.Background(), func(string, Event) {}))
}

func TestUserChannel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "events:user:1", userChannel(1))
	assert.Equal(t, "events:user:250", userChannel(250))
}

func TestNotifier_PublishAndSubscribe(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb, middleware.Logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Event, 1)
	require.NoError(t, n.StartPatternSubscriber(ctx, func(_ string, event Event) {
		received <- event
	}))

	// PSubscribe needs a moment to register before the publish.
	time.Sleep(50 * time.Millisecond)

	n.PublishToUser(ctx, 7, Event{Kind: EventVideoLiked, ActorID: 3, VideoID: 12})

	select {
	case event := <-received:
		assert.Equal(t, EventVideoLiked, event.Kind)
		assert.Equal(t, uint(3), event.ActorID)
		assert.Equal(t, uint(12), event.VideoID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}
