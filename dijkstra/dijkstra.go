// Package dijkstra implements single-pair Dijkstra over dual-weight graphs.
//
// The search drives a min-heap of (node, cost) entries under the lazy
// decrease-key strategy: superseded entries are left in the heap and skipped
// on pop once their node is finalized. The loop stops as soon as the
// destination is finalized or the heap runs dry.
package dijkstra

import (
	"fmt"

	"github.com/methan6427/Dijkstra-2026/core"
	"github.com/methan6427/Dijkstra-2026/pq"
)

// ShortestPath computes the minimum-cost path from start to end in g under
// the metric selected by opts (distance by default).
//
// Returns:
//
//   - Result: the node sequence start…end inclusive plus totals for both
//     weights, recomputed after reconstruction (see totals).
//   - err: a validation sentinel, or ErrNoPath when end is unreachable.
//
// Preconditions and validation (in order):
//  1. start and end must be non-empty (ErrEmptyEndpoint).
//  2. g must be non-nil (ErrNilGraph).
//  3. The metric must be MetricDistance or MetricTime (ErrBadMetric).
//  4. start and end must be known nodes of g (ErrNodeNotFound).
//
// Non-negative weights are assumed, not checked: finalized costs are only
// optimal under that precondition.
//
// The call is a pure function of (g, start, end, metric): all traversal
// state is allocated here and discarded on return, so a built graph may be
// shared by any number of concurrent calls.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints are provided.
	if start == "" || end == "" {
		return Result{}, ErrEmptyEndpoint
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 4) Validate the metric before any traversal work.
	if cfg.Metric != MetricDistance && cfg.Metric != MetricTime {
		return Result{}, fmt.Errorf("%w: got %s", ErrBadMetric, cfg.Metric)
	}

	// 5) Validate both endpoints exist in the graph's id space.
	//    They need not have outgoing edges.
	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return Result{}, fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}

	// 6) Allocate fresh per-query state and run the search.
	r := &runner{
		g:       g,
		metric:  cfg.Metric,
		start:   start,
		end:     end,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]struct{}),
		queue:   pq.New[string](g.NodeCount()),
	}
	r.init()
	r.process()

	// 7) Queue exhaustion without discovering end means no path exists.
	//    Absence from dist is the "not discovered" signal; there is no
	//    infinity-as-a-value.
	if _, found := r.dist[end]; !found {
		return Result{}, fmt.Errorf("%w: %s → %s", ErrNoPath, start, end)
	}

	// 8) Reconstruct the path and recompute totals for both metrics.
	path := r.buildPath()
	totalDist, totalTime := totals(g, path)

	return Result{
		Metric:        cfg.Metric,
		Path:          path,
		TotalDistance: totalDist,
		TotalTime:     totalTime,
	}, nil
}

// runner holds the mutable state for a single ShortestPath execution.
// Nothing in here outlives the call.
type runner struct {
	g      *core.Graph // the input graph; read-only within the query
	metric Metric      // the weight driving this query
	start  string
	end    string

	dist    map[string]float64  // node → best known cost; absence = undiscovered
	prev    map[string]string   // node → predecessor; absence = none (start)
	visited map[string]struct{} // nodes whose cost is finalized
	queue   *pq.Queue[string]   // frontier, with stale entries awaiting lazy deletion
}

// init seeds the search: the start node is discovered at cost zero.
func (r *runner) init() {
	r.dist[r.start] = 0
	r.queue.Push(r.start, 0)
}

// process is the main loop: repeatedly finalize the cheapest frontier node
// and relax its outgoing edges, until the destination is finalized or the
// frontier is exhausted.
func (r *runner) process() {
	for !r.queue.Empty() {
		// 1) Pop the minimum entry.
		item, _ := r.queue.Pop()
		u := item.ID

		// 2) Stale entry: u was finalized through a cheaper insertion that
		//    was popped earlier. Discard — this is the lazy deletion that
		//    stands in for decrease-key.
		if _, done := r.visited[u]; done {
			continue
		}

		// 3) Finalize u. With non-negative weights no later pop can
		//    improve on dist[u].
		r.visited[u] = struct{}{}

		// 4) Early exit: once the destination is finalized the remaining
		//    frontier is irrelevant. A start==end query lands here on the
		//    very first pop, relaxing nothing.
		if u == r.end {
			return
		}

		// 5) Relax all outgoing edges of u.
		r.relax(u)
	}
}

// relax examines each edge u→v and records any strictly cheaper way to
// reach v, pushing a fresh queue entry per improvement.
func (r *runner) relax(u string) {
	base := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		// Finalized neighbors cannot improve.
		if _, done := r.visited[e.To]; done {
			continue
		}

		alt := base + r.metric.weight(e)

		// Strict inequality: an equal-cost rediscovery keeps the existing
		// predecessor, so the first path found at minimum cost wins.
		if cur, seen := r.dist[e.To]; seen && alt >= cur {
			continue
		}

		r.dist[e.To] = alt
		r.prev[e.To] = u
		r.queue.Push(e.To, alt)
	}
}

// buildPath walks the predecessor table backward from end until a node with
// no predecessor (the start) is reached, then reverses into start→end order.
func (r *runner) buildPath() []string {
	var rev []string
	at := r.end
	for {
		rev = append(rev, at)
		p, ok := r.prev[at]
		if !ok {
			break
		}
		at = p
	}

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}

// totals recomputes both aggregate weights over the reconstructed path.
//
// For each consecutive pair the adjacency list of the earlier node is
// scanned for the first edge whose target matches — independently of which
// metric drove the search and of which parallel edge was actually relaxed.
// With parallel edges the secondary total therefore follows adjacency
// order; see the package documentation.
func totals(g *core.Graph, path []string) (totalDist, totalTime float64) {
	for i := 0; i+1 < len(path); i++ {
		for _, e := range g.Neighbors(path[i]) {
			if e.To == path[i+1] {
				totalDist += e.Distance
				totalTime += e.Time

				break
			}
		}
	}

	return totalDist, totalTime
}
