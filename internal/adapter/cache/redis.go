package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"collabhub/internal/core/domain"
)

// Connect initializes a Redis client from URL or host:port input and checks
// it with a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// gapEntry is the JSON document pushed for each undelivered notification.
type gapEntry struct {
	Notification domain.Notification `json:"notification"`
	Cause        string              `json:"cause"`
	RecordedAt   time.Time           `json:"recordedAt"`
}

// RedisGapRecorder appends undelivered notifications to a Redis list so a
// replayer can drain it with LPOP in arrival order.
type RedisGapRecorder struct {
	client redis.Cmdable
	key    string
	now    func() time.Time
}

func NewRedisGapRecorder(client redis.Cmdable, key string) *RedisGapRecorder {
	return &RedisGapRecorder{
		client: client,
		key:    key,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *RedisGapRecorder) RecordGap(ctx context.Context, n domain.Notification, cause error) error {
	entry := gapEntry{Notification: n, RecordedAt: r.now()}
	if cause != nil {
		entry.Cause = cause.Error()
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode gap entry: %w", err)
	}
	if err = r.client.RPush(ctx, r.key, payload).Err(); err != nil {
		return fmt.Errorf("record delivery gap: %w", err)
	}
	return nil
}
