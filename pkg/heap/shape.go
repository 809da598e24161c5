package heap

// full reports whether a subtree of the given size is perfect, i.e.
// every leaf sits at the same depth. Holds iff size+1 is a power of
// two.
func full(size uint64) bool { return size&(size+1) == 0 }

func (h *Heap[T]) sizeOf(x *T) uint64 {
	if x == nil {
		return 0
	}

	return h.node(x).size
}

// sizeFromChildren recomputes x's size from its current children.
func (h *Heap[T]) sizeFromChildren(x *T) {
	n := h.node(x)
	n.size = 1 + h.sizeOf(n.left) + h.sizeOf(n.right)
}

// firstNotFull descends to the node that receives the next insertion:
// the lowest node with fewer than two children, following the
// left-to-right fill of the bottom layer.
//
// At every node with two children at least one child subtree is
// perfect. When both are, equal sizes mean the bottom layer below x is
// empty and a new one starts at the leftmost slot; unequal sizes mean
// the left is one level taller and the right catches up. When only one
// side is perfect, the other side holds the fill front.
func (h *Heap[T]) firstNotFull(x *T) *T {
	for {
		n := h.node(x)
		if n.left == nil || n.right == nil {
			return x
		}

		ls, rs := h.node(n.left).size, h.node(n.right).size
		switch {
		case full(ls) && full(rs):
			if ls == rs {
				x = n.left
			} else {
				x = n.right
			}
		case full(ls):
			x = n.right
		default:
			x = n.left
		}
	}
}

// last descends to the rightmost node of the deepest populated layer:
// the donor whose relocation preserves the complete shape on deletion.
//
// The descent follows firstNotFull, with the sides flipped where both
// children are perfect, and stops one step earlier: at the first node without a right child, the left
// child, if any, is the donor.
func (h *Heap[T]) last(x *T) *T {
	for {
		n := h.node(x)
		if n.right == nil {
			if n.left != nil {
				return n.left
			}

			return x
		}

		ls, rs := h.node(n.left).size, h.node(n.right).size
		switch {
		case full(ls) && full(rs):
			if ls == rs {
				x = n.right
			} else {
				x = n.left
			}
		case full(ls):
			x = n.right
		default:
			x = n.left
		}
	}
}

// incSize adds one to the size of every ancestor of x, excluding x
// itself.
func (h *Heap[T]) incSize(x *T) {
	for p := h.node(x).parent; p != nil; p = h.node(p).parent {
		h.node(p).size++
	}
}

// decSize subtracts one from the size of every ancestor of x, excluding
// x itself.
func (h *Heap[T]) decSize(x *T) {
	for p := h.node(x).parent; p != nil; p = h.node(p).parent {
		h.node(p).size--
	}
}
