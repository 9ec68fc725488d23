package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking conversation flow.
type BookingMetrics struct {
	transitionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	webhookLatency     prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "conversation",
			Name:      "transitions_total",
			Help:      "Total state machine transitions",
		}, []string{"from_state", "to_state"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "conversation",
			Name:      "validation_failures_total",
			Help:      "Total slot validation failures",
		}, []string{"state"}),
		webhookLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "conversation",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of booking webhook processing",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.transitionsTotal, m.validationFailures, m.webhookLatency)
	return m
}

func (m *BookingMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *BookingMetrics) ObserveValidationFailure(state string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(state).Inc()
}

func (m *BookingMetrics) ObserveWebhookLatency(seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.Observe(seconds)
}
