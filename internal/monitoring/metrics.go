package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivehub_status_transitions_total",
			Help: "Event status transitions by origin, target and trigger",
		},
		[]string{"from", "to", "trigger"},
	)

	joinOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivehub_joins_total",
			Help: "Join attempts by outcome",
		},
		[]string{"outcome"},
	)

	leaveOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivehub_leaves_total",
			Help: "Leave attempts by outcome",
		},
		[]string{"outcome"},
	)

	sweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "drivehub_reconcile_sweep_duration_seconds",
			Help:    "Duration of the periodic reconcile sweep",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)

const (
	TriggerAuto   = "auto"
	TriggerManual = "manual"
)

func StatusTransition(from, to, trigger string) {
	statusTransitions.WithLabelValues(from, to, trigger).Inc()
}

func JoinOutcome(outcome string) {
	joinOutcomes.WithLabelValues(outcome).Inc()
}

func LeaveOutcome(outcome string) {
	leaveOutcomes.WithLabelValues(outcome).Inc()
}

func SweepObserved(d time.Duration) {
	sweepDuration.Observe(d.Seconds())
}
