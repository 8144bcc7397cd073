package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Handler outcomes recorded in foodorder_events_handled_total.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomePanic   = "panic"
)

// Metrics counts handler runs per event type and outcome.
type Metrics struct {
	handled  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the dispatcher collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		handled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodorder",
			Subsystem: "events",
			Name:      "handled_total",
			Help:      "Event handler runs by event type and outcome.",
		}, []string{"event_type", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "foodorder",
			Subsystem: "events",
			Name:      "handler_duration_ms",
			Help:      "Event handler latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"event_type"}),
	}
	for _, c := range []prometheus.Collector{m.handled, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(eventType, outcome string, ms float64) {
	if m == nil {
		return
	}
	m.handled.WithLabelValues(eventType, outcome).Inc()
	m.duration.WithLabelValues(eventType).Observe(ms)
}

// Handled returns the counter for tests and dashboards.
func (m *Metrics) Handled() *prometheus.CounterVec {
	return m.handled
}
