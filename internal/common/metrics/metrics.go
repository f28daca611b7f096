// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_turns_total",
			Help: "Total number of conversational turns processed",
		},
		[]string{"request_type", "intent"},
	)

	TurnFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skill_turn_failures_total",
			Help: "Total number of turns that produced no response",
		},
	)

	LookupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_lookup_total",
			Help: "Total number of university lookups by attribute and outcome",
		},
		[]string{"attribute", "outcome"},
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "skill_lookup_duration_seconds",
			Help: "Duration of university lookups in seconds",
		},
		[]string{"attribute"},
	)

	SyncRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "index_sync_records_total",
			Help: "Total number of change-feed records replayed by event kind",
		},
		[]string{"event"},
	)

	SyncFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "index_sync_failures_total",
			Help: "Total number of change-feed batches aborted by an error",
		},
	)
)
