// Package metrics defines and registers all custom Prometheus metrics for
// the HRIS API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hris"

// ── Change-request workflow metrics ──────────────────────────────────────────

// ChangeRequestsSubmittedTotal counts change requests accepted into the
// pending state.
// Label:
//   - category: the field category (e.g. "address", "contact")
var ChangeRequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_requests_submitted_total",
		Help:      "Total number of change requests submitted, by category.",
	},
	[]string{"category"},
)

// ChangeRequestsReviewedTotal counts terminal review decisions.
// Label:
//   - decision: "approved" or "rejected"
var ChangeRequestsReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_requests_reviewed_total",
		Help:      "Total number of change requests reviewed, by decision.",
	},
	[]string{"decision"},
)

// ChangeRequestReviewFailuresTotal counts review attempts that did not
// reach a terminal state.
// Label:
//   - reason: "not_found", "already_processed", or "apply_failed"
var ChangeRequestReviewFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_request_review_failures_total",
		Help:      "Total number of failed review attempts, by reason.",
	},
	[]string{"reason"},
)

// ChangeRequestsPending tracks the pending queue depth as last observed by
// the dashboard count.
var ChangeRequestsPending = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "change_requests_pending",
		Help:      "Number of change requests currently pending review.",
	},
)
