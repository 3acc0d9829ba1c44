package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session outcomes recorded by RecordSession.
const (
	OutcomeSuccess      = "success"
	OutcomeTransport    = "transport_error"
	OutcomeStatus       = "unexpected_status"
	OutcomeDecode       = "decode_error"
	OutcomeEmptySession = "empty_conversation_url"
)

var (
	// HTTPRequestDuration tracks the duration of inbound HTTP requests.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsTotal counts inbound HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// TavusSessionsTotal counts conversation creation attempts by outcome.
	TavusSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tavus_sessions_total",
			Help: "Total number of Tavus conversation creation attempts",
		},
		[]string{"outcome"},
	)

	// TavusRequestDuration tracks upstream call latency.
	TavusRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tavus_request_duration_seconds",
			Help:    "Duration of Tavus API calls in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)

// RecordSession increments the session counter for the given outcome.
func RecordSession(outcome string) {
	TavusSessionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveTavusDuration records the latency of one upstream call.
func ObserveTavusDuration(seconds float64) {
	TavusRequestDuration.Observe(seconds)
}
