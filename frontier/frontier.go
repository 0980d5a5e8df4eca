// Package frontier provides a minimal binary-heap priority frontier with
// deterministic tie-breaking.
//
// Entries are ordered by (priority, seq) where seq is a counter assigned at
// push time. Equal-priority entries therefore pop in first-pushed order,
// which keeps search results reproducible across runs.
//
// There is no decrease-key: callers that need to lower a priority push a
// new entry and discard stale ones on pop.
//
// Complexity:
//
//   - Push: O(log n)
//   - Pop:  O(log n)
//   - Peek: O(1)
package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by Pop and Peek on an empty frontier.
var ErrEmpty = errors.New("frontier: pop from empty frontier")

type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entries implements heap.Interface ordered by (priority, seq).
type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) { *e = append(*e, x.(entry[T])) }

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	*e = old[:n-1]
	return it
}

// Frontier is a min-priority queue. The zero value is ready to use.
// A Frontier is not safe for concurrent use.
type Frontier[T any] struct {
	h   entries[T]
	seq uint64
}

// New returns an empty frontier with capacity hint n.
func New[T any](n int) *Frontier[T] {
	return &Frontier[T]{h: make(entries[T], 0, n)}
}

// Push inserts item with the given priority.
func (f *Frontier[T]) Push(item T, priority float64) {
	f.seq++
	heap.Push(&f.h, entry[T]{item: item, priority: priority, seq: f.seq})
}

// Pop removes and returns the entry with the lowest (priority, seq).
func (f *Frontier[T]) Pop() (T, error) {
	if len(f.h) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return heap.Pop(&f.h).(entry[T]).item, nil
}

// Peek returns the next entry and its priority without removing it.
func (f *Frontier[T]) Peek() (T, float64, error) {
	if len(f.h) == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}
	return f.h[0].item, f.h[0].priority, nil
}

// Len returns the number of queued entries.
func (f *Frontier[T]) Len() int { return len(f.h) }
