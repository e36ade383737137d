// Package notify provides NotificationSink implementations.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lstlabs/stakeflow/sdk"
	"github.com/lstlabs/stakeflow/types"
)

const keyPrefix = "stakeflow:notification:"

var (
	_ sdk.NotificationSink = (*Logger)(nil)
	_ sdk.NotificationSink = (*Redis)(nil)
)

// Logger writes notifications to a structured logger.
type Logger struct {
	lggr sdk.Logger
}

// NewLogger creates a new Logger sink.
func NewLogger(lggr sdk.Logger) *Logger {
	return &Logger{lggr: lggr}
}

func (l *Logger) Show(_ context.Context, n types.Notification) {
	kv := []any{"id", n.ID, "variant", string(n.Variant), "title", n.Title, "message", n.Message}
	if n.Duration > 0 {
		kv = append(kv, "duration", n.Duration)
	}

	if n.Variant == types.VariantError {
		l.lggr.Warnw("notification", kv...)
		return
	}
	l.lggr.Infow("notification", kv...)
}

func (l *Logger) Dismiss(_ context.Context, id string) {
	l.lggr.Debugw("notification dismissed", "id", id)
}

// RedisClient is the part of *redis.Client the sink uses.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Redis keeps the current notification of every ID under one key, so showing a notification
// replaces the previous one and a notification with a duration expires on its own.
type Redis struct {
	client RedisClient
	lggr   sdk.Logger
}

// NewRedis creates a new Redis sink.
func NewRedis(client RedisClient, lggr sdk.Logger) *Redis {
	return &Redis{client: client, lggr: lggr}
}

func (r *Redis) Show(ctx context.Context, n types.Notification) {
	val, err := json.Marshal(n)
	if err != nil {
		r.lggr.Warnw("failed to encode notification", "id", n.ID, "error", err)
		return
	}

	if err := r.client.Set(ctx, keyPrefix+n.ID, val, n.Duration).Err(); err != nil {
		r.lggr.Warnw("failed to store notification", "id", n.ID, "error", err)
	}
}

func (r *Redis) Dismiss(ctx context.Context, id string) {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		r.lggr.Warnw("failed to dismiss notification", "id", id, "error", err)
	}
}

// Current returns the notification shown under id, if any.
func (r *Redis) Current(ctx context.Context, id string) (types.Notification, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return types.Notification{}, false, nil
	}
	if err != nil {
		return types.Notification{}, false, err
	}

	var n types.Notification
	if err := json.Unmarshal([]byte(val), &n); err != nil {
		return types.Notification{}, false, fmt.Errorf("failed to decode notification %q: %w", id, err)
	}

	return n, true, nil
}
