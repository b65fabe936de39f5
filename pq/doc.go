// Package pq implements a binary min-heap priority queue over
// (identifier, priority) pairs.
//
// The queue is deliberately minimal: Push, Pop, Len, Empty. There is no
// decrease-key and no uniqueness constraint — the same identifier may sit in
// the heap several times with different priorities. Consumers that need
// decrease-key semantics (such as Dijkstra's algorithm) compensate with lazy
// deletion: push a fresh entry whenever a better priority is found, and
// discard stale entries as they surface at the root.
//
// Ties among equal priorities are broken by structural position in the heap;
// callers must not depend on tie order.
//
// Complexity:
//
//   - Push: O(log n) — append, then sift up.
//   - Pop:  O(log n) — swap root with last, shrink, sift down.
//   - Len, Empty: O(1).
package pq
