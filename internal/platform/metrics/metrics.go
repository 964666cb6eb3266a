package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerEventsTotal counts cash entries derived from entity-side events,
// labelled by event kind.
var LedgerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "backoffice",
	Subsystem: "ledger",
	Name:      "events_total",
	Help:      "Cash ledger entries recorded from entity events.",
}, []string{"kind"})

// LedgerEventFailures counts entity-side events whose ledger write failed.
// The entity change stays; these need manual reconciliation.
var LedgerEventFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "backoffice",
	Subsystem: "ledger",
	Name:      "event_failures_total",
	Help:      "Entity events whose ledger write failed.",
}, []string{"kind"})

// HTTPRequestDuration observes request latency per route and status.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "backoffice",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// PermissionDenials counts writes silently skipped for viewer roles.
var PermissionDenials = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "backoffice",
	Subsystem: "authz",
	Name:      "permission_denials_total",
	Help:      "Write operations skipped because the actor's role lacks the capability.",
}, []string{"action"})
