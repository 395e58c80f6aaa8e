// Package metrics exposes Prometheus counters for geode searches.
//
// A Search is created against a caller-owned registry, so tests and the CLI
// never share the global default registry. All methods accept a nil
// receiver and then do nothing, which lets callers run without metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/katalvlaran/geodes/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "geodes"
	subsystem = "search"
)

// Search holds the search collectors.
type Search struct {
	// RunsTotal counts completed (non-memoized) searches.
	RunsTotal prometheus.Counter

	// NodesVisitedTotal sums search.Stats.Visited over all runs.
	NodesVisitedTotal prometheus.Counter

	// NodesPrunedTotal sums search.Stats.Pruned over all runs.
	NodesPrunedTotal prometheus.Counter

	// CacheHitsTotal counts results served from the planner memo.
	CacheHitsTotal prometheus.Counter

	// DurationSeconds observes wall time per run.
	DurationSeconds prometheus.Histogram
}

// NewSearch registers the search collectors on reg.
func NewSearch(reg prometheus.Registerer) *Search {
	f := promauto.With(reg)

	return &Search{
		RunsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Completed geode searches.",
		}),
		NodesVisitedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes_visited_total",
			Help:      "Search nodes entered, leaves included.",
		}),
		NodesPrunedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes_pruned_total",
			Help:      "Search nodes cut by the optimistic bound.",
		}),
		CacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits_total",
			Help:      "Results served from the in-process memo.",
		}),
		DurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time of one search.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
}

// ObserveRun records one finished search.
func (m *Search) ObserveRun(st search.Stats, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.Inc()
	m.NodesVisitedTotal.Add(float64(st.Visited))
	m.NodesPrunedTotal.Add(float64(st.Pruned))
	m.DurationSeconds.Observe(elapsed.Seconds())
}

// ObserveCacheHit records one memoized answer.
func (m *Search) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// WriteTextfile dumps g in the Prometheus text format to path, for
// node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
