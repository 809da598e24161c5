package heap

import "github.com/flier/ptrheap/internal/debug"

// Pop detaches and returns the minimum element, or nil when the heap is
// empty.
func (h *Heap[T]) Pop() *T {
	if h.root == nil {
		return nil
	}

	top := h.root
	h.Delete(top)

	return top
}

// Delete unlinks v from any position in the heap.
//
// The rightmost bottom-layer node is cut and relinked into v's
// position, then reordered. v is handed back to the caller with its
// node reset, immediately reusable.
func (h *Heap[T]) Delete(v *T) {
	debug.Assert(v != nil, "v must not be nil")

	vn := h.node(v)

	if vn.parent == nil && vn.left == nil && vn.right == nil {
		// The sole node.
		debug.Assert(h.root == v, "v must belong to this heap")

		h.root = nil
		vn.Init()

		return
	}

	last := h.last(h.root)
	h.decSize(last)
	h.cutLeaf(last)

	if last == v {
		// v was the donor itself; the tree just lost a leaf.
		vn.Init()
	} else {
		ln := h.node(last)
		ln.parent, ln.left, ln.right = vn.parent, vn.left, vn.right
		h.sizeFromChildren(last)
		h.updateParent(last, v)
		h.updateChildren(last)

		vn.Init()

		h.Update(last)
	}

	debug.Log(nil, "delete", "%p, size: %d", v, h.Size())
}
