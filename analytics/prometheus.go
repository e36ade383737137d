package analytics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lstlabs/stakeflow/sdk"
)

var _ sdk.AnalyticsSink = (*Prometheus)(nil)

// Prometheus counts lifecycle events by name and, where the payload carries one, by failure type.
type Prometheus struct {
	events   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewPrometheus registers the stake counters on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stakeflow_events_total",
			Help: "The total number of stake lifecycle events",
		}, []string{"event"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stakeflow_submission_errors_total",
			Help: "The total number of rejected or failed stake submissions by error kind",
		}, []string{"event", "type"}),
	}
}

func (p *Prometheus) Record(_ context.Context, event string, payload map[string]any) {
	p.events.WithLabelValues(event).Inc()

	if kind, ok := payload["type"].(string); ok && kind != "" {
		p.failures.WithLabelValues(event, kind).Inc()
	}
}
