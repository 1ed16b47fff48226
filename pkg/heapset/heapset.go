// Package heapset provides a deduplicating min-priority queue.
//
// A HeapSet combines a binary min-heap with a membership index so that each
// element occurs at most once no matter how often it is added. Add and Pop run
// in O(log n); membership checks run in O(1).
//
// Priorities come from a caller-supplied function over the element type, so
// the same element set can be ordered differently by different consumers.
// HeapSet is not safe for concurrent use.
package heapset

import "errors"

// ErrEmpty is returned by [HeapSet.Pop] when the set contains no elements.
var ErrEmpty = errors.New("heapset is empty")

// HeapSet is a min-priority queue holding each element at most once.
//
// The zero value is not usable; use [New] to create instances.
type HeapSet[T comparable] struct {
	priority func(T) float64
	elems    []T
	index    map[T]int // element -> heap slot
}

// New creates an empty HeapSet ordered by the given priority function.
// Lower priority values are popped first. The function must be a total order
// over every element that will be added; ties are broken by insertion order
// of the heap structure, which is deterministic for a fixed add sequence.
func New[T comparable](priority func(T) float64) *HeapSet[T] {
	return &HeapSet[T]{
		priority: priority,
		index:    make(map[T]int),
	}
}

// Len returns the number of elements currently held.
func (h *HeapSet[T]) Len() int { return len(h.elems) }

// Contains reports whether x is currently in the set.
func (h *HeapSet[T]) Contains(x T) bool {
	_, ok := h.index[x]
	return ok
}

// Add inserts x unless it is already present, in which case Add is a no-op.
// It reports whether the element was inserted.
func (h *HeapSet[T]) Add(x T) bool {
	if _, ok := h.index[x]; ok {
		return false
	}
	h.elems = append(h.elems, x)
	h.index[x] = len(h.elems) - 1
	h.up(len(h.elems) - 1)
	return true
}

// Pop removes and returns the element with the lowest priority.
// It returns [ErrEmpty] when the set is empty.
func (h *HeapSet[T]) Pop() (T, error) {
	if len(h.elems) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	min := h.elems[0]
	delete(h.index, min)

	last := len(h.elems) - 1
	if last > 0 {
		h.elems[0] = h.elems[last]
		h.index[h.elems[0]] = 0
	}
	h.elems = h.elems[:last]
	if last > 0 {
		h.down(0)
	}
	return min, nil
}

func (h *HeapSet[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.priority(h.elems[i]) >= h.priority(h.elems[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *HeapSet[T]) down(i int) {
	n := len(h.elems)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.priority(h.elems[left]) < h.priority(h.elems[smallest]) {
			smallest = left
		}
		if right < n && h.priority(h.elems[right]) < h.priority(h.elems[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *HeapSet[T]) swap(i, j int) {
	h.elems[i], h.elems[j] = h.elems[j], h.elems[i]
	h.index[h.elems[i]] = i
	h.index[h.elems[j]] = j
}
