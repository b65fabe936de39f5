// Package dijkstra: metric selection, options, result type, and sentinel
// errors for the shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/methan6427/Dijkstra-2026/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrEmptyEndpoint indicates that the start or end node id is empty.
	ErrEmptyEndpoint = errors.New("dijkstra: start or end node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the start or end node does not exist
	// in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMetric indicates a metric the engine cannot optimize.
	// MetricBoth belongs to callers: they invoke the engine once per metric.
	ErrBadMetric = errors.New("dijkstra: metric must be MetricDistance or MetricTime")

	// ErrNoPath indicates that the destination is unreachable from the
	// start. This is an expected outcome, not a failure of the engine.
	ErrNoPath = errors.New("dijkstra: no path found")
)

// Metric selects which per-edge weight drives a query.
type Metric int

const (
	// MetricDistance optimizes the per-edge Distance weight.
	MetricDistance Metric = iota

	// MetricTime optimizes the per-edge Time weight.
	MetricTime

	// MetricBoth asks for one query per metric. The engine rejects it;
	// callers (routefile.Query.Run, the HTTP handler) fan out instead.
	MetricBoth
)

// String returns the lower-case metric name, matching the wire vocabulary
// of the presentation boundary.
func (m Metric) String() string {
	switch m {
	case MetricDistance:
		return "distance"
	case MetricTime:
		return "time"
	case MetricBoth:
		return "both"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric maps the textual selector vocabulary {distance, time, both}
// onto a Metric. Unrecognized selectors return ErrBadMetric so they are
// rejected before the engine is ever invoked.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "distance":
		return MetricDistance, nil
	case "time":
		return MetricTime, nil
	case "both":
		return MetricBoth, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrBadMetric, s)
	}
}

// Split expands a metric selector into the engine calls it requires:
// MetricBoth becomes [MetricDistance, MetricTime]; anything else is itself.
// Callers fan out over the result, one ShortestPath call per element.
func (m Metric) Split() []Metric {
	if m == MetricBoth {
		return []Metric{MetricDistance, MetricTime}
	}

	return []Metric{m}
}

// weight extracts the driving weight of e under m.
// Only valid for MetricDistance and MetricTime; ShortestPath validates
// the metric before any edge is examined.
func (m Metric) weight(e core.Edge) float64 {
	if m == MetricTime {
		return e.Time
	}

	return e.Distance
}

// Result is the outcome of one successful query: the node sequence from
// start to end inclusive, plus aggregate totals for both weights regardless
// of which one drove the search.
type Result struct {
	// Metric is the weight that drove this query.
	Metric Metric

	// Path is the ordered node sequence, start first, end last.
	// A start==end query yields the single-node path.
	Path []string

	// TotalDistance sums the Distance weight over the path's edges.
	TotalDistance float64

	// TotalTime sums the Time weight over the path's edges.
	TotalTime float64
}

// Options configures the behavior of one ShortestPath call.
type Options struct {
	// Metric is the per-edge weight to optimize. Default: MetricDistance.
	Metric Metric
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMetric selects the per-edge weight to optimize.
func WithMetric(m Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// DefaultOptions returns the Options used when no functional options are
// supplied: optimize distance.
func DefaultOptions() Options {
	return Options{Metric: MetricDistance}
}
