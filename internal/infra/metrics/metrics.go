// Package metrics provides Prometheus metrics for bhava.
// Counters for check-ins, points, badge unlocks, local state writes and the
// best-effort remote sync, plus health check gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Progression ────────────────────────────────────────────────────────────

// CheckIns counts processed check-ins.
var CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bhava",
	Name:      "checkins_total",
	Help:      "Total processed check-ins by emotion.",
}, []string{"emotion"})

// PointsAwarded counts points earned across all check-ins.
var PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bhava",
	Name:      "points_awarded_total",
	Help:      "Total points awarded.",
})

// BadgesUnlocked counts badge unlocks by badge id.
var BadgesUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bhava",
	Name:      "badges_unlocked_total",
	Help:      "Total badge unlocks by badge.",
}, []string{"badge"})

// ─── Local State ────────────────────────────────────────────────────────────

// StateWriteFailures counts dropped writes of the progress aggregate.
var StateWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bhava",
	Name:      "state_write_failures_total",
	Help:      "Progress writes that failed and were dropped.",
})

// ─── Remote Sync ────────────────────────────────────────────────────────────

// SyncDispatched counts sync tasks handed off after a check-in.
var SyncDispatched = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bhava",
	Name:      "sync_dispatched_total",
	Help:      "Remote sync tasks dispatched.",
})

// SyncStepFailures counts failed sync steps by step name.
var SyncStepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bhava",
	Name:      "sync_step_failures_total",
	Help:      "Remote sync steps that failed and were dropped.",
}, []string{"step"})

// SyncLatency tracks the duration of a whole sync task.
var SyncLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "bhava",
	Name:      "sync_duration_seconds",
	Help:      "Duration of one remote sync task.",
	Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bhava",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})
