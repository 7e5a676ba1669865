// Package metrics defines the Prometheus metrics exported by the HTTP server.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "soapbox"

// RequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - path: the matched route pattern, not the raw URL
//   - status: numeric HTTP status of the response
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route and status.",
	},
	[]string{"method", "path", "status"},
)

// RequestDuration measures request handling latency per route.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling, by route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// VotesAppliedTotal counts vote toggles that committed.
// Label:
//   - action: "cast" or "retract"
var VotesAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_applied_total",
		Help:      "Total number of committed vote toggles, by action.",
	},
	[]string{"action"},
)

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered.",
	},
)
