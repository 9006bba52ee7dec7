package abtree

// selectNode returns the node at in-order position k, or nil if k is out of
// bounds.
func (t *Tree[T]) selectNode(k int) *Node[T] {
	if t.hdr == nil {
		return nil
	}
	n := t.hdr.root
	for n != nil {
		leftSize := sizeOf(n.left)
		switch {
		case k < leftSize:
			n = n.left
		case k > leftSize:
			k -= leftSize + 1
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Select returns an iterator at position index. Indices out of bounds
// select End().
func (t *Tree[T]) Select(index int) Iterator[T] {
	return Iterator[T]{hdr: t.header(), node: t.selectNode(index)}
}

// Get returns the value at index. Get does not check bounds: callers have
// to make sure that 0 <= index < Len(), otherwise Get panics.
func (t *Tree[T]) Get(index int) T {
	return t.selectNode(index).value
}

// Ptr returns a pointer to the value at index, allowing in-place updates.
// Like Get, Ptr does not check bounds.
func (t *Tree[T]) Ptr(index int) *T {
	return &t.selectNode(index).value
}

// Set overwrites the value at index. Like Get, Set does not check bounds.
func (t *Tree[T]) Set(index int, v T) {
	t.selectNode(index).value = v
}

// At returns the value at index. It fails with ErrInvalidState for an empty
// tree and with ErrOutOfRange for an index outside of [0, Len()).
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if err := checkIndex(index, t.Len(), false); err != nil {
		return zero, err
	}
	return t.selectNode(index).value, nil
}

// Front returns the first value, or ErrInvalidState for an empty tree.
func (t *Tree[T]) Front() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, ErrInvalidState
	}
	return t.hdr.leftmost.value, nil
}

// Back returns the last value, or ErrInvalidState for an empty tree.
func (t *Tree[T]) Back() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, ErrInvalidState
	}
	return t.hdr.rightmost.value, nil
}
