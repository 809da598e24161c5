// Package heap implements an intrusive pointer-based min-heap.
//
// The heap is a complete binary tree with explicit parent/left/right
// links and a per-node subtree size counter, so both the next insertion
// slot and the removal donor are found in O(log n) without external
// indexing. Elements live in caller memory: a caller structure embeds a
// [Node] and a [Hook] recovers the node from the element. The heap owns
// the topology, never the storage, and it never moves values; elements
// are relocated by re-linking pointers in place. Besides the usual
// insert/pop, elements can be deleted or re-ordered from any position,
// which makes the heap usable as a priority queue over mutable keys.
//
// A Heap is not safe for concurrent use, not even for concurrent
// readers; callers serialize access themselves.
package heap

import "github.com/flier/ptrheap/internal/debug"

// LessFunc reports whether a sorts before b.
//
// It must be a strict weak order; anything else voids all ordering
// guarantees. State the comparator needs is captured by the closure.
type LessFunc[T any] func(a, b *T) bool

// Hook recovers the embedded [Node] of an element.
type Hook[T any] func(*T) *Node[T]

// Heap is a min-heap over elements of type T.
type Heap[T any] struct {
	root *T
	hook Hook[T]
	less LessFunc[T]
}

// New returns an empty heap over elements whose node is reachable
// through hook, ordered by less.
func New[T any](hook Hook[T], less LessFunc[T]) *Heap[T] {
	debug.Assert(hook != nil, "hook must not be nil")
	debug.Assert(less != nil, "less must not be nil")

	return &Heap[T]{hook: hook, less: less}
}

func (h *Heap[T]) node(x *T) *Node[T] { return h.hook(x) }

// Size returns the number of elements in the heap.
func (h *Heap[T]) Size() uint64 {
	if h.root == nil {
		return 0
	}

	return h.node(h.root).size
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.root == nil }

// Min returns the minimum element without detaching it.
//
// Calling Min on an empty heap is a contract violation: it trips an
// assertion under the debug tag and returns nil otherwise.
func (h *Heap[T]) Min() *T {
	debug.Assert(h.root != nil, "heap must not be empty")

	return h.root
}

// rederiveRoot climbs from x to the top of the tree and reinstalls the
// root pointer, which may have changed identity across swaps.
func (h *Heap[T]) rederiveRoot(x *T) {
	for {
		p := h.node(x).parent
		if p == nil {
			break
		}
		x = p
	}

	h.root = x
}
