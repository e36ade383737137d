package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lstlabs/stakeflow/notify"
	"github.com/lstlabs/stakeflow/types"
)

// fakeRedis is an in-memory stand-in for the redis commands the sink issues.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}

	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func TestRedis_ShowReplacesAndDismisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newFakeRedis()
	sink := notify.NewRedis(client, zap.NewNop().Sugar())

	_, ok, err := sink.Current(ctx, "stake")
	require.NoError(t, err)
	assert.False(t, ok)

	sink.Show(ctx, types.Notification{ID: "stake", Variant: types.VariantPending, Title: "In Progress.."})
	sink.Show(ctx, types.Notification{ID: "stake", Variant: types.VariantComplete, Title: "Success", Duration: 3 * time.Second})

	got, ok, err := sink.Current(ctx, "stake")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.VariantComplete, got.Variant)
	assert.Equal(t, 3*time.Second, client.ttls["stakeflow:notification:stake"])

	sink.Dismiss(ctx, "stake")

	_, ok, err = sink.Current(ctx, "stake")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_StoreFailureIsLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	client := newFakeRedis()
	client.err = errors.New("connection refused")

	notify.NewRedis(client, zap.New(core).Sugar()).Show(context.Background(), types.Notification{ID: "stake"})

	assert.Equal(t, 1, logs.FilterMessage("failed to store notification").Len())
}

func TestRedis_CurrentCorrupt(t *testing.T) {
	t.Parallel()

	client := newFakeRedis()
	client.data["stakeflow:notification:stake"] = "not json"

	_, _, err := notify.NewRedis(client, zap.NewNop().Sugar()).Current(context.Background(), "stake")
	require.ErrorContains(t, err, `failed to decode notification "stake"`)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	sink := notify.NewLogger(zap.New(core).Sugar())
	ctx := context.Background()

	sink.Show(ctx, types.Notification{ID: "stake", Variant: types.VariantPending, Title: "In Progress.."})
	sink.Show(ctx, types.Notification{ID: "stake", Variant: types.VariantError, Title: "Something went wrong"})
	sink.Dismiss(ctx, "stake")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "notification dismissed", entries[2].Message)
	assert.Equal(t, "pending", entries[0].ContextMap()["variant"])
}
