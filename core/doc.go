// Package core defines the central Graph and Edge types for dual-weight
// routing: a directed multigraph whose every edge carries an independent
// distance cost and travel-time cost.
//
// Design:
//
//   - Adjacency is stored as an ordered slice per source node. Insertion
//     order is preserved and parallel edges between the same ordered pair of
//     nodes are kept as-is, never deduplicated. Downstream consumers rely on
//     this: when parallel edges exist, "the first matching edge in adjacency
//     order" is a defined, observable position.
//   - Nodes that appear only as edge targets are registered automatically by
//     AddEdge, so every id mentioned by any edge is a known node with zero or
//     more outgoing edges.
//   - A sync.RWMutex guards the build phase. Once built, a Graph may be
//     shared read-only across any number of concurrent queries.
//
// Contract:
//
//   - Edge weights are assumed non-negative. This is a precondition of the
//     shortest-path engine, not something core validates: negative weights
//     are stored verbatim and silently break the engine's optimality
//     guarantee.
//
// Errors:
//
//	ErrEmptyNodeID - a node or edge endpoint was given the empty string id.
package core
