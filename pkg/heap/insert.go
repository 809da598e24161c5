package heap

import "github.com/flier/ptrheap/internal/debug"

// Insert links x into the heap.
//
// x's node must be initialized and not linked into any heap. The heap
// allocates nothing; x stays in caller memory until detached by
// [Heap.Pop] or [Heap.Delete].
func (h *Heap[T]) Insert(x *T) {
	debug.Assert(x != nil, "x must not be nil")

	n := h.node(x)

	debug.Assert(n.unlinked(), "x must be initialized and unlinked")

	if h.root == nil {
		h.root = x
		return
	}

	t := h.firstNotFull(h.root)
	tn := h.node(t)
	if tn.left == nil {
		tn.left = x
	} else {
		tn.right = x
	}
	n.parent = t

	h.incSize(x)
	h.siftUp(x)
	h.rederiveRoot(x)

	debug.Log(nil, "insert", "%p, size: %d", x, h.Size())
}
