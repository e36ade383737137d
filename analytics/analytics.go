// Package analytics provides AnalyticsSink implementations for stake lifecycle events.
package analytics

import (
	"context"
	"sort"

	"github.com/lstlabs/stakeflow/sdk"
)

var (
	_ sdk.AnalyticsSink = (*Logger)(nil)
	_ sdk.AnalyticsSink = Multi(nil)
)

// Logger writes every event to a structured logger.
type Logger struct {
	lggr sdk.Logger
}

// NewLogger creates a new Logger sink.
func NewLogger(lggr sdk.Logger) *Logger {
	return &Logger{lggr: lggr}
}

func (l *Logger) Record(_ context.Context, event string, payload map[string]any) {
	l.lggr.Infow("analytics event", append([]any{"event", event}, flatten(payload)...)...)
}

// Multi fans an event out to every sink in order.
type Multi []sdk.AnalyticsSink

func (m Multi) Record(ctx context.Context, event string, payload map[string]any) {
	for _, s := range m {
		if s != nil {
			s.Record(ctx, event, payload)
		}
	}
}

// flatten turns the payload into sorted key value pairs.
func flatten(payload map[string]any) []any {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		out = append(out, k, payload[k])
	}

	return out
}
