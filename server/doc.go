// Package server exposes the shortest-path engine over HTTP: a thin
// presentation boundary that owns no traversal state of its own.
//
// Routes:
//
//	POST /api/route  — body {"start","end","metric"}; metric is one of
//	                   "distance", "time", "both". Responds with one result
//	                   per metric queried: {metric, path, total_distance,
//	                   total_time}. Unknown nodes and unreachable
//	                   destinations map to 404; malformed requests to 400.
//	GET  /api/health — liveness probe.
//
// The handler borrows a built core.Graph read-only, so one Handler serves
// concurrent requests without locking beyond what the store provides.
package server
