package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics tracks outbound provider API calls and the degrade-to-
// placeholder fallback so dashboards can tell how often fake numbers ship.
type UpstreamMetrics struct {
	fetchDuration *prometheus.HistogramVec
	fetchErrors   *prometheus.CounterVec
	degradedTotal prometheus.Counter
}

// NewUpstreamMetrics registers upstream call instruments.
func NewUpstreamMetrics(cfg Config) *UpstreamMetrics {
	return newUpstreamMetrics(prometheus.DefaultRegisterer, cfg)
}

func newUpstreamMetrics(registerer prometheus.Registerer, cfg Config) *UpstreamMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	constLabels := constLabelsFor(cfg)

	fetchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "insights_upstream_fetch_duration_seconds",
			Help:        "Duration of outbound provider API calls.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			ConstLabels: constLabels,
		},
		[]string{"provider", "operation"},
	)
	fetchErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "insights_upstream_fetch_errors_total",
			Help:        "Failed outbound provider API calls.",
			ConstLabels: constLabels,
		},
		[]string{"provider", "operation"},
	)
	degradedTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "insights_metrics_degraded_total",
			Help:        "Financial metrics responses served from placeholder data.",
			ConstLabels: constLabels,
		},
	)

	registerer.MustRegister(fetchDuration, fetchErrors, degradedTotal)

	return &UpstreamMetrics{
		fetchDuration: fetchDuration,
		fetchErrors:   fetchErrors,
		degradedTotal: degradedTotal,
	}
}

// ObserveFetch records one outbound call.
func (m *UpstreamMetrics) ObserveFetch(provider, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
	if err != nil {
		m.fetchErrors.WithLabelValues(provider, operation).Inc()
	}
}

// IncDegraded counts one placeholder response.
func (m *UpstreamMetrics) IncDegraded() {
	if m == nil {
		return
	}
	m.degradedTotal.Inc()
}
