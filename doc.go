// Package dijkstra2026 computes single-pair shortest paths over directed
// graphs whose edges carry two independent weights: a distance cost and a
// travel-time cost. One weight drives each query; both are reported.
//
// Everything is organized under small, focused subpackages:
//
//	core/      — the dual-weight directed multigraph store
//	pq/        — generic binary min-heap priority queue
//	dijkstra/  — the shortest-path engine (lazy-decrease-key Dijkstra)
//	routefile/ — text wire-format ingestion (header + edge records)
//	server/    — HTTP presentation boundary over a loaded graph
//	cmd/routes — command-line front end (one-shot query and serve modes)
//
// The engine is a pure function of (graph, start, end, metric): it borrows a
// built core.Graph read-only, owns all of its per-query state, and reports
// outcomes — including "no path" — as ordinary return values.
//
// Quick ASCII example:
//
//	A──1/5──B
//	 \      │
//	 5/1   1/5
//	   \    │
//	    `───C
//
// With distance driving the query, A→C resolves to A→B→C (total distance 2);
// with time driving it, to the direct A→C edge (total time 1).
package dijkstra2026
