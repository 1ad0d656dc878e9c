// Package metrics holds the Prometheus instrumentation for ingestion and
// the catalog cache. All metrics are namespaced with "helianthus_".
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaintingsIngested counts paintings written during ingestion,
	// partitioned by outcome ("inserted" or "updated").
	PaintingsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helianthus",
			Name:      "paintings_ingested_total",
			Help:      "Paintings written during ingestion runs",
		},
		[]string{"outcome"},
	)

	// SPARQLRequests counts queries to the Wikidata query service,
	// partitioned by kind ("ask", "select") and result ("ok", "error").
	SPARQLRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helianthus",
			Name:      "sparql_requests_total",
			Help:      "Queries sent to the Wikidata query service",
		},
		[]string{"kind", "result"},
	)

	// IngestRuns counts ingestion runs by result ("ok", "error").
	IngestRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helianthus",
			Name:      "ingest_runs_total",
			Help:      "Completed ingestion runs",
		},
		[]string{"result"},
	)

	// IngestDuration observes wall time of ingestion runs in seconds.
	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "helianthus",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of ingestion runs",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// CacheRequests counts list-response cache lookups by result
	// ("hit", "miss").
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helianthus",
			Name:      "cache_requests_total",
			Help:      "List-response cache lookups",
		},
		[]string{"result"},
	)
)
