// Package dijkstra_test provides runnable examples for the shortest-path
// engine. Each example runs via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/methan6427/Dijkstra-2026/core"
	"github.com/methan6427/Dijkstra-2026/dijkstra"
)

// ExampleShortestPath demonstrates how the chosen metric changes the route:
// the same triangle is cheapest via B by distance, but direct by time.
func ExampleShortestPath() {
	// 1) Build a graph whose edges carry both weights.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1, 5)
	_ = g.AddEdge("B", "C", 1, 5)
	_ = g.AddEdge("A", "C", 5, 1)

	// 2) Optimize distance (the default metric).
	byDist, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("by distance: %v d=%.0f t=%.0f\n", byDist.Path, byDist.TotalDistance, byDist.TotalTime)

	// 3) Optimize time for the same pair.
	byTime, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMetric(dijkstra.MetricTime))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("by time:     %v d=%.0f t=%.0f\n", byTime.Path, byTime.TotalDistance, byTime.TotalTime)
	// Output:
	// by distance: [A B C] d=2 t=10
	// by time:     [A C] d=5 t=1
}

// ExampleShortestPath_noPath shows the explicit not-found outcome: an
// unreachable destination is an ordinary result, not a panic.
func ExampleShortestPath_noPath() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1, 1)
	_ = g.AddNode("Z")

	_, err := dijkstra.ShortestPath(g, "A", "Z")
	fmt.Println(err)
	// Output: dijkstra: no path found: A → Z
}
