package heap

import "github.com/flier/ptrheap/internal/debug"

// swapParentAndSon exchanges two directly connected nodes in place,
// the only operation that rewires cross-links.
//
// After the call s occupies p's former position, with p's former
// parent-side link and p's former children except the slot that was s
// itself, which now holds p. p takes over s's children. The size
// fields travel with the positions, not the nodes, so they are
// exchanged rather than recomputed. Keys are never copied.
func (h *Heap[T]) swapParentAndSon(p, s *T) {
	pn, sn := h.node(p), h.node(s)

	debug.Assert(sn.parent == p, "s must be a son of p")

	fromLeft := pn.left == s

	debug.Assert(fromLeft || pn.right == s, "p must link to s")

	sn.parent = pn.parent
	h.updateParent(s, p)

	pn.left, pn.right, sn.left, sn.right = sn.left, sn.right, pn.left, pn.right
	if fromLeft {
		sn.left = p
	} else {
		sn.right = p
	}
	pn.parent = s

	h.updateChildren(p)
	h.updateChildren(s)

	pn.size, sn.size = sn.size, pn.size
}
