// Package metrics defines and registers the custom Prometheus metrics of the
// console. HTTP request metrics come from echoprometheus; the vectors here
// cover calls to the remote backend and view outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// Outcome label values for BackendRequestsTotal.
const (
	OutcomeOK        = "ok"
	OutcomeNetwork   = "network_error"
	OutcomeRejected  = "rejected"
	OutcomeAuthError = "auth_error"
)

// BackendRequestsTotal counts calls to the remote backend.
// Labels:
//   - operation: "register", "login" or "list_containers"
//   - outcome: one of the Outcome* constants
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the backend, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// BackendRequestDuration measures backend round trips, failures included.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests sent to the backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ViewRendersTotal counts rendered views by final state (e.g. "loaded", "failed").
var ViewRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_renders_total",
		Help:      "Total number of rendered views, by view and state.",
	},
	[]string{"view", "state"},
)

// SessionActive is 1 while the console holds a session token.
var SessionActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_active",
		Help:      "Whether the console currently holds a session token.",
	},
)
