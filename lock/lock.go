// Package lock provides SubmissionLock implementations.
package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lstlabs/stakeflow/sdk"
)

var (
	_ sdk.SubmissionLock = (*Local)(nil)
	_ sdk.SubmissionLock = (*Redis)(nil)
)

// Local is an in-process lock with expiry.
type Local struct {
	mu      sync.Mutex
	held    map[string]time.Time
	nowFunc func() time.Time
}

// NewLocal creates a new Local lock.
func NewLocal() *Local {
	return &Local{
		held:    make(map[string]time.Time),
		nowFunc: time.Now,
	}
}

func (l *Local) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	if exp, ok := l.held[key]; ok && now.Before(exp) {
		return false, nil
	}
	l.held[key] = now.Add(ttl)

	return true, nil
}

func (l *Local) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, key)

	return nil
}

// RedisClient is the part of *redis.Client the lock uses.
type RedisClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lock shared between processes, based on SET NX with an expiry. Each acquisition
// stores a fresh token, and Release only deletes a key that still holds it, so a lock that
// expired and was taken by another process is left alone.
type Redis struct {
	client RedisClient

	mu     sync.Mutex
	tokens map[string]string
}

// NewRedis creates a new Redis lock.
func NewRedis(client RedisClient) *Redis {
	return &Redis{
		client: client,
		tokens: make(map[string]string),
	}
}

func (l *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey(key), token, ttl).Result()
	if err != nil || !ok {
		return false, err
	}

	l.mu.Lock()
	l.tokens[key] = token
	l.mu.Unlock()

	return true, nil
}

func (l *Redis) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	token, ok := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()

	if !ok {
		return nil
	}

	return releaseScript.Run(ctx, l.client, []string{redisKey(key)}, token).Err()
}

func redisKey(key string) string {
	return "lock:" + key
}
