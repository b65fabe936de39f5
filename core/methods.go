package core

import "sort"

// HasNode reports whether id is a known node (as a source or a target).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Neighbors returns the outgoing edges of id in insertion order.
// A node with no outgoing edges (or an unknown id) yields a nil slice.
//
// The returned slice aliases internal storage: callers borrow it read-only
// for the duration of a query and must not modify or retain it across
// concurrent AddEdge calls.
// Complexity: O(1).
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[id]
}

// Nodes returns all known node ids in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of known nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
