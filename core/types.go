// Package core: type declarations, options, and sentinel errors for the
// dual-weight directed multigraph. Methods live in graph.go and methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation was given an empty node id.
	ErrEmptyNodeID = errors.New("core: node ID is empty")
)

// Edge represents one directed connection out of a node.
//
// An Edge carries both weights at all times; which one drives a query is
// decided by the caller, per query, not per edge. Parallel edges (same To,
// different or equal weights) are legal and preserved in insertion order.
type Edge struct {
	// To is the destination node id.
	To string

	// Distance is the length cost of traversing this edge.
	Distance float64

	// Time is the travel-time cost of traversing this edge.
	Time float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithCapacity pre-sizes the internal maps for roughly n nodes.
// Useful when the node count is known up front (e.g. from a file header).
func WithCapacity(n int) GraphOption {
	return func(g *Graph) { g.capHint = n }
}

// Graph is the in-memory dual-weight directed multigraph.
//
// adj maps each source node id to its outgoing edges in insertion order.
// nodes holds every id ever mentioned, whether as a source or as a target,
// so HasNode answers for zero-out-degree nodes too. mu guards both maps
// during the build phase; all read methods take the read lock, so a built
// Graph is safe to share across concurrent queries.
type Graph struct {
	mu sync.RWMutex // guards nodes, adj, edgeCount

	capHint   int                 // optional pre-size hint from WithCapacity
	nodes     map[string]struct{} // every known node id
	adj       map[string][]Edge   // source id → ordered outgoing edges
	edgeCount int                 // total edges across all adjacency lists
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[string]struct{}, g.capHint)
	g.adj = make(map[string][]Edge, g.capHint)

	return g
}
