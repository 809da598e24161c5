package heap

// siftUp moves x toward the root while it is less than its parent.
func (h *Heap[T]) siftUp(x *T) {
	for {
		p := h.node(x).parent
		if p == nil || !h.less(x, p) {
			return
		}

		h.swapParentAndSon(p, x)
	}
}

// siftDown moves x toward the leaves while one of its children is less
// than x, descending into the smaller child.
//
// By the complete shape only the left child can exist alone; that case
// is a single final comparison against the left, the missing right
// child is never touched.
func (h *Heap[T]) siftDown(x *T) {
	for {
		n := h.node(x)
		left, right := n.left, n.right

		if left == nil {
			return
		}

		if right == nil {
			if h.less(left, x) {
				h.swapParentAndSon(x, left)
			}

			return
		}

		son := left
		if h.less(right, left) {
			son = right
		}

		if !h.less(son, x) {
			return
		}

		h.swapParentAndSon(x, son)
	}
}

// Update restores heap order around x after its key was mutated in
// place.
//
// It sifts down and then up unconditionally: after a single-node
// mutation at most one direction applies, and each pass is a no-op when
// order already holds at x.
func (h *Heap[T]) Update(x *T) {
	h.siftDown(x)
	h.siftUp(x)
	h.rederiveRoot(x)
}
