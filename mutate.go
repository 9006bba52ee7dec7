package abtree

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// --- Structural primitives -------------------------------------------------

// link inserts the detached node n immediately before anchor; a nil anchor
// denotes the end position. Sizes are incremented along the path and the
// path is rebalanced afterwards.
func (t *Tree[T]) link(anchor, n *Node[T]) {
	h := t.header()
	n.left, n.right, n.size = nil, nil, 1
	var p *Node[T]
	switch {
	case anchor == nil && h.root == nil:
		n.parent = nil
		h.root, h.leftmost, h.rightmost = n, n, n
		return
	case anchor == nil:
		p = h.rightmost
		p.right = n
		h.rightmost = n
	case anchor.left != nil:
		p = rightmostOf(anchor.left)
		p.right = n
	default:
		p = anchor
		p.left = n
		if anchor == h.leftmost {
			h.leftmost = n
		}
	}
	n.parent = p
	for q := p; q != nil; q = q.parent {
		q.size++
	}
	t.insertFixup(n)
}

// unlink removes n from the tree without releasing it.
//
// A node with at most one child is spliced out and its child promoted. A
// node with two children is replaced by its neighbour taken from the larger
// subtree: the successor if size(right) >= size(left), else the predecessor.
func (t *Tree[T]) unlink(n *Node[T]) {
	h := t.hdr
	if n.left == nil || n.right == nil {
		x := n.left
		if x == nil {
			x = n.right
		}
		p := n.parent
		fromRight := p != nil && n == p.right
		t.replaceChild(n, x)
		if n == h.leftmost {
			if x != nil {
				h.leftmost = leftmostOf(x)
			} else {
				h.leftmost = p
			}
		}
		if n == h.rightmost {
			if x != nil {
				h.rightmost = rightmostOf(x)
			} else {
				h.rightmost = p
			}
		}
		for q := p; q != nil; q = q.parent {
			q.size--
		}
		t.eraseFixup(p, fromRight)
	} else if sizeOf(n.right) >= sizeOf(n.left) {
		x := leftmostOf(n.right)
		fromRight := x == x.parent.right
		for q := x.parent; q != nil; q = q.parent {
			q.size--
		}
		start := x
		x.left = n.left
		n.left.parent = x
		if x != n.right {
			start = x.parent
			start.left = x.right
			if x.right != nil {
				x.right.parent = start
			}
			x.right = n.right
			n.right.parent = x
		}
		t.replaceChild(n, x)
		x.size = n.size
		t.eraseFixup(start, fromRight)
	} else {
		x := rightmostOf(n.left)
		fromRight := x == x.parent.right
		for q := x.parent; q != nil; q = q.parent {
			q.size--
		}
		start := x
		x.right = n.right
		n.right.parent = x
		if x != n.left {
			start = x.parent
			start.right = x.left
			if x.left != nil {
				x.left.parent = start
			}
			x.left = n.left
			n.left.parent = x
		}
		t.replaceChild(n, x)
		x.size = n.size
		t.eraseFixup(start, fromRight)
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// anchorOf returns the node an iterator points to, checking that it belongs
// to t.
func (t *Tree[T]) anchorOf(pos Iterator[T]) *Node[T] {
	assert(pos.hdr == t.header(), "iterator does not belong to this tree")
	return pos.node
}

// insertSeq creates and links a node for every value of seq before anchor.
// If one of the nodes cannot be created, the nodes linked so far are removed
// again and the tree is left as it was.
func (t *Tree[T]) insertSeq(anchor *Node[T], seq iter.Seq[T]) (Iterator[T], error) {
	h := t.header()
	var first *Node[T]
	count := 0
	for v := range seq {
		n, err := t.copyNode(v)
		if err != nil {
			t.eraseCount(first, count)
			return Iterator[T]{hdr: h, node: anchor}, err
		}
		t.link(anchor, n)
		if first == nil {
			first = n
		}
		count++
	}
	if first == nil {
		return Iterator[T]{hdr: h, node: anchor}, nil
	}
	return Iterator[T]{hdr: h, node: first}, nil
}

// eraseCount removes up to count nodes starting at n, in sequence order.
func (t *Tree[T]) eraseCount(n *Node[T], count int) {
	it := Iterator[T]{hdr: t.hdr, node: n}
	for ; count > 0 && it.node != nil; count-- {
		it = t.Erase(it)
	}
}

// --- Push / Pop ------------------------------------------------------------

// PushFront prepends v.
func (t *Tree[T]) PushFront(v T) error {
	n, err := t.valueNode(v)
	if err != nil {
		return err
	}
	t.link(t.hdr.leftmost, n)
	return nil
}

// PushBack appends v.
func (t *Tree[T]) PushBack(v T) error {
	n, err := t.valueNode(v)
	if err != nil {
		return err
	}
	t.link(nil, n)
	return nil
}

// PopFront removes the first value. It reports false for an empty tree.
func (t *Tree[T]) PopFront() bool {
	if t.IsEmpty() {
		return false
	}
	t.Erase(t.Begin())
	return true
}

// PopBack removes the last value. It reports false for an empty tree.
func (t *Tree[T]) PopBack() bool {
	if t.IsEmpty() {
		return false
	}
	t.Erase(t.Last())
	return true
}

// --- Emplace ---------------------------------------------------------------

// Emplace constructs a value with construct and inserts it before pos.
// If construct fails, the tree is unchanged and the error is marked as
// ErrConstruction.
func (t *Tree[T]) Emplace(pos Iterator[T], construct func() (T, error)) (Iterator[T], error) {
	anchor := t.anchorOf(pos)
	n, err := t.createNode(construct)
	if err != nil {
		return pos, err
	}
	t.link(anchor, n)
	return Iterator[T]{hdr: t.hdr, node: n}, nil
}

// EmplaceAt constructs a value and inserts it at index, 0 <= index <= Len().
func (t *Tree[T]) EmplaceAt(index int, construct func() (T, error)) (Iterator[T], error) {
	if err := checkIndex(index, t.Len(), true); err != nil {
		return t.End(), err
	}
	return t.Emplace(t.Select(index), construct)
}

// EmplaceFront constructs a value and prepends it.
func (t *Tree[T]) EmplaceFront(construct func() (T, error)) error {
	_, err := t.Emplace(t.Begin(), construct)
	return err
}

// EmplaceBack constructs a value and appends it.
func (t *Tree[T]) EmplaceBack(construct func() (T, error)) error {
	_, err := t.Emplace(t.End(), construct)
	return err
}

// --- Insert ----------------------------------------------------------------

// Insert inserts v before pos and returns an iterator to the new value.
func (t *Tree[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	anchor := t.anchorOf(pos)
	n, err := t.valueNode(v)
	if err != nil {
		return pos, err
	}
	t.link(anchor, n)
	return Iterator[T]{hdr: t.hdr, node: n}, nil
}

// InsertN inserts count copies of v before pos. It returns an iterator to
// the first inserted value, or pos if count <= 0.
func (t *Tree[T]) InsertN(pos Iterator[T], count int, v T) (Iterator[T], error) {
	anchor := t.anchorOf(pos)
	return t.insertSeq(anchor, func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(v) {
				return
			}
		}
	})
}

// InsertSlice inserts copies of values before pos, keeping their order. It
// returns an iterator to the first inserted value, or pos if values is
// empty. Either all values are inserted or none.
func (t *Tree[T]) InsertSlice(pos Iterator[T], values []T) (Iterator[T], error) {
	anchor := t.anchorOf(pos)
	return t.insertSeq(anchor, slices.Values(values))
}

// InsertSeq inserts copies of the values of seq before pos. seq must not
// iterate over t itself.
func (t *Tree[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	anchor := t.anchorOf(pos)
	return t.insertSeq(anchor, seq)
}

// InsertAt inserts v at index, 0 <= index <= Len().
func (t *Tree[T]) InsertAt(index int, v T) (Iterator[T], error) {
	if err := checkIndex(index, t.Len(), true); err != nil {
		return t.End(), err
	}
	return t.Insert(t.Select(index), v)
}

// InsertNAt inserts count copies of v at index.
func (t *Tree[T]) InsertNAt(index int, count int, v T) (Iterator[T], error) {
	if err := checkIndex(index, t.Len(), true); err != nil {
		return t.End(), err
	}
	return t.InsertN(t.Select(index), count, v)
}

// InsertSliceAt inserts copies of values at index.
func (t *Tree[T]) InsertSliceAt(index int, values []T) (Iterator[T], error) {
	if err := checkIndex(index, t.Len(), true); err != nil {
		return t.End(), err
	}
	return t.InsertSlice(t.Select(index), values)
}

// --- Erase -----------------------------------------------------------------

// Erase removes the value at pos and returns an iterator to the value
// following it. Erasing End() is a no-op.
func (t *Tree[T]) Erase(pos Iterator[T]) Iterator[T] {
	n := t.anchorOf(pos)
	if n == nil {
		return pos
	}
	next := pos.Next()
	t.unlink(n)
	t.destroyNode(n)
	return next
}

// EraseSpan removes the values in [first, last) and returns last. first
// must not be positioned after last.
func (t *Tree[T]) EraseSpan(first, last Iterator[T]) Iterator[T] {
	t.anchorOf(last)
	if first.Equal(t.Begin()) && last.IsEnd() {
		t.Clear()
		return t.End()
	}
	for !first.Equal(last) {
		assert(!first.IsEnd(), "EraseSpan: last is not reachable from first")
		first = t.Erase(first)
	}
	return last
}

// EraseAt removes the value at index.
func (t *Tree[T]) EraseAt(index int) error {
	if err := checkIndex(index, t.Len(), false); err != nil {
		return err
	}
	t.Erase(t.Select(index))
	return nil
}

// EraseRange removes count values starting at index.
func (t *Tree[T]) EraseRange(index, count int) error {
	size := t.Len()
	if count < 0 {
		return errors.Wrapf(ErrOutOfRange, "negative count %d", count)
	}
	if count == 0 {
		return checkIndex(index, size, true)
	}
	if err := checkIndex(index, size, false); err != nil {
		return err
	}
	if index+count > size {
		return errors.Wrapf(ErrOutOfRange, "range [%d, %d), size %d", index, index+count, size)
	}
	t.eraseCount(t.selectNode(index), count)
	return nil
}
