// Package metrics defines and registers all custom Prometheus metrics for the
// farm health API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmhealth"

// ── Scan metrics ──────────────────────────────────────────────────────────────

// ScansProcessedTotal counts scans that completed the workflow.
// Label:
//   - result: "healthy", "treatable", or "untreatable"
var ScansProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scans_processed_total",
		Help:      "Total number of scan submissions that completed, by result.",
	},
	[]string{"result"},
)

// AlertsCreatedTotal counts alerts produced by non-healthy scans.
// Label:
//   - priority: "medium" or "high"
var AlertsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_created_total",
		Help:      "Total number of health alerts created, by priority.",
	},
	[]string{"priority"},
)

// ── AI classifier metrics ─────────────────────────────────────────────────────

// ClassifierFallbackTotal counts soft failures of the AI service that were
// converted into synthesized fallback results.
// Label:
//   - reason: short description ("request_failed", "bad_status", "bad_payload")
var ClassifierFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classifier_fallback_total",
		Help:      "Total number of AI soft failures absorbed into fallback results.",
	},
	[]string{"reason"},
)

// ClassifierRequestDuration measures the round-trip time of calls to the
// external AI service, including failed attempts.
// Label:
//   - outcome: "ok" or "fallback"
var ClassifierRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classifier_request_duration_seconds",
		Help:      "Duration of requests to the external AI classification service.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	},
	[]string{"outcome"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// StatsCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of dashboard stats cache lookups, by result.",
	},
	[]string{"result"},
)
