// Package routefile: query type, options, and sentinel errors for the text
// wire-format loader.
package routefile

import (
	"errors"

	"github.com/methan6427/Dijkstra-2026/core"
	"github.com/methan6427/Dijkstra-2026/dijkstra"
)

// Sentinel errors for wire-format ingestion.
var (
	// ErrEmptyInput indicates the input held no header record at all.
	ErrEmptyInput = errors.New("routefile: input contains no header record")

	// ErrBadHeader indicates the header record does not have exactly
	// three fields (start, end, metric code).
	ErrBadHeader = errors.New("routefile: malformed header record")

	// ErrBadMetricCode indicates a header metric outside {1, 2, 3}.
	ErrBadMetricCode = errors.New("routefile: metric code must be 1 (distance), 2 (time) or 3 (both)")

	// ErrBadEdgeRecord indicates an edge record that does not parse as
	// (source, target, distance, time).
	ErrBadEdgeRecord = errors.New("routefile: malformed edge record")
)

// progressInterval is how many edge records pass between progress callbacks.
const progressInterval = 1000

// Query is a fully materialized request: the graph plus the header fields.
// It is what the ingestion boundary hands to the engine.
type Query struct {
	// Graph is the dual-weight graph built from the edge records.
	Graph *core.Graph

	// Start and End are the endpoints named by the header.
	Start string
	End   string

	// Metric is the header's selector. MetricBoth means Run performs one
	// engine call per metric; the engine itself never sees it.
	Metric dijkstra.Metric
}

// Run executes the query: one ShortestPath call for a single metric, two
// (distance first, then time) for MetricBoth. The first failure — including
// dijkstra.ErrNoPath — aborts and is returned as-is.
func (q *Query) Run() ([]dijkstra.Result, error) {
	metrics := q.Metric.Split()
	results := make([]dijkstra.Result, 0, len(metrics))
	for _, m := range metrics {
		res, err := dijkstra.ShortestPath(q.Graph, q.Start, q.End, dijkstra.WithMetric(m))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// Options configures the loader.
type Options struct {
	// Progress, if non-nil, is invoked with the running edge count every
	// progressInterval records and once after the final record.
	Progress func(edgesLoaded int)
}

// Option represents a functional option for configuring Load.
type Option func(*Options)

// WithProgress installs a progress callback for long ingestions.
// The callback runs on the loading goroutine; keep it cheap.
func WithProgress(fn func(edgesLoaded int)) Option {
	return func(o *Options) { o.Progress = fn }
}
