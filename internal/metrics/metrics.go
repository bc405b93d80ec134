// Package metrics exposes the Prometheus counters and histograms that give
// Testable Property 5 (request/release round-trip counts) a
// machine-checkable surface beyond the test suite, plus basic visibility
// into deferral behavior and critical-section hold time.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles one node's counters. Each node constructs its own
// Metrics against its own registry so that multiple in-process nodes in a
// test never collide on metric names.
type Metrics struct {
	RequestsSent     prometheus.Counter
	RequestsFailed   prometheus.Counter
	ReleasesSent     prometheus.Counter
	GrantsIssued     prometheus.Counter
	DeferralsStarted prometheus.Counter
	DeferralsResolved prometheus.Counter
	HoldDuration     prometheus.Histogram
	Attempts         prometheus.Counter
	AttemptTimeouts  prometheus.Counter

	registry *prometheus.Registry
}

// New builds and registers a fresh set of node-scoped metrics. nodeID is
// attached as a constant label so that, when multiple nodes' registries are
// federated behind one /metrics scrape (not done by this repo, but left
// possible), series from different nodes don't collide.
func New(nodeID int64) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"node_id": strconv.FormatInt(nodeID, 10)}

	m := &Metrics{
		registry: registry,
		RequestsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "requests_sent_total",
			Help:        "RequestAccess calls this node has sent to peers.",
			ConstLabels: labels,
		}),
		RequestsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "requests_failed_total",
			Help:        "RequestAccess calls that errored or timed out and were treated as granted.",
			ConstLabels: labels,
		}),
		ReleasesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "releases_sent_total",
			Help:        "ReleaseAccess calls this node has sent to peers.",
			ConstLabels: labels,
		}),
		GrantsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "grants_issued_total",
			Help:        "RequestAccess calls this node has replied to (granted).",
			ConstLabels: labels,
		}),
		DeferralsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "deferrals_started_total",
			Help:        "Inbound RequestAccess calls this node has held open pending its own state.",
			ConstLabels: labels,
		}),
		DeferralsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "deferrals_resolved_total",
			Help:        "Deferred RequestAccess calls this node has eventually replied to.",
			ConstLabels: labels,
		}),
		HoldDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "printmutex",
			Name:        "cs_hold_duration_seconds",
			Help:        "Wall-clock time spent HELD, per attempt.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		Attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "attempts_total",
			Help:        "Critical-section attempts started by the local driver.",
			ConstLabels: labels,
		}),
		AttemptTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "printmutex",
			Name:        "attempt_timeouts_total",
			Help:        "Critical-section attempts aborted on grant-drain timeout.",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		m.RequestsSent, m.RequestsFailed, m.ReleasesSent, m.GrantsIssued,
		m.DeferralsStarted, m.DeferralsResolved, m.HoldDuration,
		m.Attempts, m.AttemptTimeouts,
	)
	return m
}

// Registry returns the Prometheus registry backing these metrics, for
// wiring into an http.Handler via promhttp.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
