package core

// AddNode registers a node id with no edges. Adding an existing node is a
// no-op. Returns ErrEmptyNodeID for the empty string.
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[id] = struct{}{}

	return nil
}

// AddEdge appends the directed arc from→to with the given distance and time
// costs. Both endpoints are registered as known nodes. The edge is appended
// to from's adjacency list, so insertion order is the adjacency order seen
// by Neighbors; parallel edges accumulate rather than overwrite.
//
// Weights are stored verbatim: non-negativity is the caller's contract with
// the shortest-path engine, not enforced here.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance, time float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
	g.adj[from] = append(g.adj[from], Edge{To: to, Distance: distance, Time: time})
	g.edgeCount++

	return nil
}
