package heap

import "github.com/flier/ptrheap/internal/debug"

// Node carries the link fields of one heap element.
//
// Embed a Node by value in the element structure and expose it through
// a [Hook]. The heap owns all fields while the element is linked in.
// Detaching an element resets its node to the initialized state, so the
// element can be re-inserted, reused elsewhere, or freed right away.
type Node[T any] struct {
	parent *T
	left   *T
	right  *T
	size   uint64
}

// Init resets the node to the unlinked state: no links, subtree size 1.
//
// It must be called on fresh memory before the first insertion.
func (n *Node[T]) Init() {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.size = 1
}

// unlinked reports whether the node is in the initialized, detached
// state.
func (n *Node[T]) unlinked() bool {
	return n.parent == nil && n.left == nil && n.right == nil && n.size == 1
}

// cutLeaf detaches a bottom-layer leaf from its parent.
func (h *Heap[T]) cutLeaf(x *T) {
	n := h.node(x)

	debug.Assert(n.left == nil && n.right == nil, "x must be a leaf")
	debug.Assert(n.parent != nil, "x must not be the root")

	pn := h.node(n.parent)
	if pn.left == x {
		pn.left = nil
	} else {
		pn.right = nil
	}

	n.parent = nil
}

// updateChildren repoints the parent links of both children of x back
// at x.
func (h *Heap[T]) updateChildren(x *T) {
	n := h.node(x)

	if n.left != nil {
		h.node(n.left).parent = x
	}
	if n.right != nil {
		h.node(n.right).parent = x
	}
}

// updateParent redirects the child link of x's parent from old to x.
func (h *Heap[T]) updateParent(x, old *T) {
	p := h.node(x).parent
	if p == nil {
		return
	}

	pn := h.node(p)
	if pn.left == old {
		pn.left = x
	} else {
		pn.right = x
	}
}
