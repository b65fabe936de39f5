// Package dijkstra provides the single-pair shortest-path engine over
// dual-weight graphs: Dijkstra's algorithm with a binary min-heap and
// lazy deletion in place of decrease-key.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost path from a start node to an
//     end node in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - Each edge carries two independent weights (distance and travel time);
//     exactly one of them — the Metric — drives a given query. The result
//     reports totals for both, whichever drove the search.
//   - The engine terminates early as soon as the destination is finalized;
//     the rest of the frontier is abandoned.
//
// Key behaviors:
//
//   - Lazy deletion: when a shorter path to a queued node is found, a fresh
//     (node, priority) entry is pushed; the superseded entry stays in the
//     heap and is discarded when popped, because the node is already
//     finalized. No decrease-key is needed.
//   - Strict relaxation: a tie (equal candidate cost) never overwrites an
//     existing predecessor, so the first path discovered at minimum cost
//     wins deterministically.
//   - Post-hoc totals: after path reconstruction, both totals are recomputed
//     by scanning each hop's adjacency list for the first edge to the next
//     node. With parallel edges the secondary total therefore reflects the
//     first matching edge in adjacency order, not necessarily the edge the
//     search relaxed. This is deliberate, documented behavior.
//
// Preconditions:
//
//   - All edge weights must be non-negative. This is not validated: a
//     negative weight silently voids the optimality of finalized nodes.
//   - The graph is borrowed read-only for the duration of one call and may
//     be shared across concurrent calls; all per-query state is private.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyEndpoint: start or end id is the empty string.
//   - ErrNilGraph:      a nil *core.Graph was passed.
//   - ErrNodeNotFound:  start or end is not a known node in the graph.
//   - ErrBadMetric:     the metric is not MetricDistance or MetricTime
//     (MetricBoth is a caller-side fan-out, never an engine input).
//   - ErrNoPath:        the destination is unreachable — an ordinary,
//     expected outcome, returned as a value, never a panic.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each node finalized once, each edge
//     relaxation pushes at most one heap entry.
//   - Space: O(V + E) — distance/predecessor/visited tables plus up to O(E)
//     transient heap entries awaiting lazy deletion.
package dijkstra
