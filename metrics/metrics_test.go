package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/geodes/metrics"
	"github.com/katalvlaran/geodes/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewSearch(reg)

	m.ObserveRun(search.Stats{Visited: 120, Pruned: 30, Leaves: 10, Raises: 2}, 5*time.Millisecond)
	m.ObserveRun(search.Stats{Visited: 80, Pruned: 20}, time.Millisecond)
	m.ObserveCacheHit()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal))
	assert.Equal(t, 200.0, testutil.ToFloat64(m.NodesVisitedTotal))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.NodesPrunedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal))

	count, err := testutil.GatherAndCount(reg, "geodes_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestSearch_NilReceiver allows callers to run without metrics.
func TestSearch_NilReceiver(t *testing.T) {
	var m *metrics.Search
	assert.NotPanics(t, func() {
		m.ObserveRun(search.Stats{Visited: 1}, time.Second)
		m.ObserveCacheHit()
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewSearch(reg)
	m.ObserveRun(search.Stats{Visited: 7}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "geodes.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "geodes_search_nodes_visited_total 7")

	err = metrics.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg)
	assert.Error(t, err)
}
