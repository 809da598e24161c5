package heap

// Item owns one value placed on a [ValueHeap].
type Item[T any] struct {
	node Node[Item[T]]

	// Value is the caller's payload. Mutating the part of it the
	// comparator reads must be followed by [Heap.Update] on the item.
	Value T
}

// NewItem returns an initialized, unlinked item owning value.
func NewItem[T any](value T) *Item[T] {
	it := &Item[T]{Value: value}
	it.node.Init()

	return it
}

func itemNode[T any](it *Item[T]) *Node[Item[T]] { return &it.node }

// ValueHeap is the value-owned flavor of [Heap]: elements are items
// embedding their node next to the value they carry, so callers deal in
// values rather than in intrusive structures.
type ValueHeap[T any] struct {
	Heap[Item[T]]
}

// NewValue returns an empty value-owned heap ordered by less over the
// stored values.
func NewValue[T any](less func(a, b *T) bool) *ValueHeap[T] {
	h := new(ValueHeap[T])
	h.Heap = *New(itemNode[T], func(a, b *Item[T]) bool {
		return less(&a.Value, &b.Value)
	})

	return h
}

// Push allocates an item for value and inserts it. The returned item is
// the handle for [Heap.Delete] and [Heap.Update].
func (h *ValueHeap[T]) Push(value T) *Item[T] {
	it := NewItem(value)
	h.Insert(it)

	return it
}

// PopValue detaches the minimum item and returns its value, or ok false
// when the heap is empty.
func (h *ValueHeap[T]) PopValue() (value T, ok bool) {
	if it := h.Pop(); it != nil {
		value, ok = it.Value, true
	}

	return
}
