package frontier

import (
	"github.com/zyedidia/generic/heap"
)

// entry is one queued value with its priority and insertion stamp.
type entry[T any] struct {
	value T
	cost  int64
	seq   uint64
}

// less orders by cost, then by insertion sequence.
func less[T any](a, b entry[T]) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.seq < b.seq
}

// Frontier is a min-heap of values keyed by int64 cost.
// The zero value is not usable; call New.
// Frontier is not safe for concurrent use.
type Frontier[T any] struct {
	h   *heap.Heap[entry[T]]
	seq uint64
}

// New returns an empty Frontier.
func New[T any]() *Frontier[T] {
	return &Frontier[T]{h: heap.New[entry[T]](less[T])}
}

// Push inserts v with priority cost.
func (f *Frontier[T]) Push(v T, cost int64) {
	f.h.Push(entry[T]{value: v, cost: cost, seq: f.seq})
	f.seq++
}

// PopMin removes and returns the lowest-cost value. Among equal costs the
// earliest pushed wins. ok is false when the frontier is empty.
func (f *Frontier[T]) PopMin() (v T, cost int64, ok bool) {
	e, ok := f.h.Pop()
	if !ok {
		return v, 0, false
	}

	return e.value, e.cost, true
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier[T]) Len() int {
	return f.h.Size()
}
