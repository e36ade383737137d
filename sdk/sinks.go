package sdk

import (
	"context"
	"time"

	"github.com/lstlabs/stakeflow/types"
)

// AnalyticsSink records product events. Recording is best effort: implementations must not block
// the caller on delivery and never report failure back to the stake flow.
type AnalyticsSink interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// NotificationSink displays keyed notifications. Show replaces any notification with the same ID.
type NotificationSink interface {
	Show(ctx context.Context, n types.Notification)
	Dismiss(ctx context.Context, id string)
}

// SubmissionLock prevents two submissions for the same key from being in flight at once.
type SubmissionLock interface {
	// Acquire returns false without error when the key is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
