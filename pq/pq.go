package pq

// Item is one queue entry: an identifier and the priority it was pushed with.
type Item[T comparable] struct {
	// ID is the opaque identifier carried by this entry.
	ID T

	// Priority orders entries ascending; the minimum is popped first.
	Priority float64
}

// Queue is a binary min-heap of Items over a dense slice.
// The zero value is an empty, ready-to-use queue.
type Queue[T comparable] struct {
	items []Item[T]
}

// New returns an empty Queue with room for capacity entries before growing.
func New[T comparable](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]Item[T], 0, capacity)}
}

// Len returns the number of entries currently queued. O(1).
func (q *Queue[T]) Len() int { return len(q.items) }

// Empty reports whether no entries remain. O(1).
func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

// Push inserts id with the given priority. Duplicate ids are allowed and
// coexist with their own priorities. O(log n).
func (q *Queue[T]) Push(id T, priority float64) {
	q.items = append(q.items, Item[T]{ID: id, Priority: priority})
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the entry with minimum priority.
// The second return value is false when the queue is empty.
// O(log n).
func (q *Queue[T]) Pop() (Item[T], bool) {
	if len(q.items) == 0 {
		var zero Item[T]

		return zero, false
	}

	n := len(q.items) - 1
	min := q.items[0]
	// Move the last element to the root, shrink, and restore the heap
	// property downward.
	q.items[0] = q.items[n]
	q.items = q.items[:n]
	if n > 0 {
		q.siftDown(0)
	}

	return min, true
}

// siftUp restores the heap property from index i toward the root:
// while the entry is smaller than its parent, swap them.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[i].Priority >= q.items[parent].Priority {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown restores the heap property from index i toward the leaves:
// at each step, swap with the smaller of the two children while the heap
// property is violated.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && q.items[right].Priority < q.items[left].Priority {
			smallest = right
		}
		if q.items[i].Priority <= q.items[smallest].Priority {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
