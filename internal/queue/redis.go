package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ThumbnailQueue is the redis list the image worker consumes from.
const ThumbnailQueue = "thumbnail_jobs"

// RedisDispatcher pushes JSON-encoded jobs onto a redis list. The client is
// shared with the session store.
type RedisDispatcher struct {
	client *redis.Client
	list   string
}

var _ Dispatcher = (*RedisDispatcher)(nil)

// NewRedisDispatcher creates a dispatcher publishing to the given list.
func NewRedisDispatcher(client *redis.Client, list string) *RedisDispatcher {
	return &RedisDispatcher{client: client, list: list}
}

// Enqueue serializes the job and pushes it onto the list.
func (d *RedisDispatcher) Enqueue(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := d.client.LPush(ctx, d.list, payload).Err(); err != nil {
		return fmt.Errorf("push job: %w", err)
	}
	return nil
}
