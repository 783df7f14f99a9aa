// Package metrics declares the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsStarted counts sync runs, scheduled and manual alike.
	RunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grippsync_runs_started_total",
		Help: "Total number of sync runs started",
	})

	// EntityFailures counts entity routines that ended with an
	// unrecoverable error and were rolled back.
	EntityFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grippsync_entity_failures_total",
		Help: "Total number of failed entity sync routines",
	}, []string{"entity"})

	// RowsUpserted counts mirror rows written per entity.
	RowsUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grippsync_rows_upserted_total",
		Help: "Total number of mirror rows upserted",
	}, []string{"entity"})

	// PagesFetched counts successfully fetched pages per entity.
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grippsync_pages_fetched_total",
		Help: "Total number of pages fetched from the remote API",
	}, []string{"entity"})

	// PagesSkipped counts pages abandoned after exhausting per-page
	// retries.
	PagesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grippsync_pages_skipped_total",
		Help: "Total number of pages skipped after repeated failures",
	}, []string{"entity"})

	// OutboundRetries counts backoff retries of single remote calls.
	OutboundRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grippsync_outbound_retries_total",
		Help: "Total number of outbound call retries",
	})

	// RateLimitHits counts 429/503 responses received from the remote.
	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grippsync_rate_limit_hits_total",
		Help: "Total number of rate-limit responses",
	})

	// QueueDepth tracks the number of calls waiting in the request queue.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "grippsync_queue_depth",
		Help: "Number of outbound calls waiting for dispatch",
	})
)
