package abtree

import "iter"

// Iterator is a bidirectional in-order position within a tree. The zero
// node denotes the end position, which is also the boundary for reverse
// iteration: stepping forward from End() yields Begin(), stepping backward
// from End() yields the last value.
//
// Iterators are small values and are passed by value. An iterator stays
// valid as long as the node it refers to is not erased; rebalancing never
// moves values between nodes.
type Iterator[T any] struct {
	hdr  *header[T]
	node *Node[T]
}

// Begin returns an iterator to the first value, or End() for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	h := t.header()
	return Iterator[T]{hdr: h, node: h.leftmost}
}

// End returns the past-the-end iterator.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{hdr: t.header()}
}

// Last returns an iterator to the last value, or End() for an empty tree.
func (t *Tree[T]) Last() Iterator[T] {
	h := t.header()
	return Iterator[T]{hdr: h, node: h.rightmost}
}

// Next returns the iterator to the in-order successor.
func (it Iterator[T]) Next() Iterator[T] {
	if it.hdr == nil {
		return it
	}
	n := it.node
	if n == nil {
		return Iterator[T]{hdr: it.hdr, node: it.hdr.leftmost}
	}
	if n.right != nil {
		return Iterator[T]{hdr: it.hdr, node: leftmostOf(n.right)}
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return Iterator[T]{hdr: it.hdr, node: p}
}

// Prev returns the iterator to the in-order predecessor.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.hdr == nil {
		return it
	}
	n := it.node
	if n == nil {
		return Iterator[T]{hdr: it.hdr, node: it.hdr.rightmost}
	}
	if n.left != nil {
		return Iterator[T]{hdr: it.hdr, node: rightmostOf(n.left)}
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return Iterator[T]{hdr: it.hdr, node: p}
}

// Value returns the value at the iterator's position. Dereferencing End()
// panics.
func (it Iterator[T]) Value() T {
	assert(it.node != nil, "dereferencing end iterator")
	return it.node.value
}

// Ptr returns a pointer to the value at the iterator's position.
func (it Iterator[T]) Ptr() *T {
	assert(it.node != nil, "dereferencing end iterator")
	return &it.node.value
}

// Set overwrites the value at the iterator's position.
func (it Iterator[T]) Set(v T) {
	assert(it.node != nil, "dereferencing end iterator")
	it.node.value = v
}

// Index returns the position of the iterator in the sequence. End() has
// position Len(). Index is O(log n).
func (it Iterator[T]) Index() int {
	if it.node == nil {
		return it.Size()
	}
	return rank(it.node)
}

// Size returns the number of values in the tree the iterator belongs to.
func (it Iterator[T]) Size() int {
	if it.hdr == nil || it.hdr.root == nil {
		return 0
	}
	return it.hdr.root.size
}

// IsEnd reports whether it is the end position.
func (it Iterator[T]) IsEnd() bool {
	return it.node == nil
}

// Equal reports whether two iterators refer to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && (it.node != nil || it.hdr == other.hdr)
}

// --- Go iterators ----------------------------------------------------------

// All returns a sequence of index/value pairs in order.
//
// The tree must not be modified during iteration, except for updating
// values through Ptr or Set.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for it := t.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(i, it.node.value) {
				return
			}
			i++
		}
	}
}

// Backward returns a sequence of index/value pairs in reverse order.
func (t *Tree[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := t.Len() - 1
		for it := t.Last(); !it.IsEnd(); it = it.Prev() {
			if !yield(i, it.node.value) {
				return
			}
			i--
		}
	}
}

// Values returns a sequence of the values in order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(it.node.value) {
				return
			}
		}
	}
}

// Slice returns the values of the tree as a slice.
func (t *Tree[T]) Slice() []T {
	s := make([]T, 0, t.Len())
	for v := range t.Values() {
		s = append(s, v)
	}
	return s
}
