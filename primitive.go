package abtree

import "iter"

// NodeState tells how a primitive iterator arrived at its current node.
// The high nibble of a state is the change in depth caused by the step,
// as a signed 4-bit quantity.
type NodeState int8

// Arrival states of a PrimitiveIterator.
const (
	StateRoot    NodeState = 0x00  // positioned at the root, depth 0
	StateParent  NodeState = -0x0F // ascended from a child, depth -1
	StateLeft    NodeState = 0x12  // descended to a left child, depth +1
	StateRight   NodeState = 0x13  // descended to a right child, depth +1
	StateSibling NodeState = 0x04  // moved across to the sibling, depth unchanged
)

// DepthDelta returns the change in depth caused by the step that produced s.
func (s NodeState) DepthDelta() int {
	return int(s >> 4)
}

func (s NodeState) String() string {
	switch s {
	case StateRoot:
		return "root"
	case StateParent:
		return "parent"
	case StateLeft:
		return "left"
	case StateRight:
		return "right"
	case StateSibling:
		return "sibling"
	}
	return "unknown"
}

// PrimitiveIterator walks the structure of a tree rather than its sequence.
// Every node is visited on the way down, and inner nodes are visited again
// when the walk climbs back up (state StateParent). Together with the depth
// counter this is enough to reconstruct the shape of the tree.
//
// A step forward prefers the left child, then the right child; arriving from
// below it moves to the unvisited right sibling or climbs to the parent.
// Stepping backward performs the mirrored walk. Climbing above the root
// yields PEnd().
type PrimitiveIterator[T any] struct {
	hdr   *header[T]
	node  *Node[T]
	state NodeState
	depth int
}

// PBegin returns a primitive iterator at the root. For an empty tree this
// equals PEnd().
func (t *Tree[T]) PBegin() PrimitiveIterator[T] {
	h := t.header()
	if h.root == nil {
		return t.PEnd()
	}
	return PrimitiveIterator[T]{hdr: h, node: h.root, state: StateRoot}
}

// PEnd returns the end position of structural walks.
func (t *Tree[T]) PEnd() PrimitiveIterator[T] {
	return PrimitiveIterator[T]{hdr: t.header(), state: StateParent, depth: -1}
}

// Next performs one step of the forward structural walk. Stepping from
// PEnd() restarts at the root.
func (it PrimitiveIterator[T]) Next() PrimitiveIterator[T] {
	return it.step(false)
}

// Prev performs one step of the mirrored structural walk, which visits
// right children before left children. Stepping from PEnd() restarts at the
// root.
func (it PrimitiveIterator[T]) Prev() PrimitiveIterator[T] {
	return it.step(true)
}

func (it PrimitiveIterator[T]) step(mirrored bool) PrimitiveIterator[T] {
	if it.hdr == nil {
		return it
	}
	n := it.node
	if n == nil {
		if it.hdr.root == nil {
			return it
		}
		return PrimitiveIterator[T]{hdr: it.hdr, node: it.hdr.root, state: StateRoot}
	}
	first, second := n.left, n.right
	firstState, secondState := StateLeft, StateRight
	if mirrored {
		first, second = second, first
		firstState, secondState = secondState, firstState
	}
	next := PrimitiveIterator[T]{hdr: it.hdr}
	switch {
	case it.state != StateParent && first != nil:
		next.node, next.state = first, firstState
	case it.state != StateParent && second != nil:
		next.node, next.state = second, secondState
	case n.parent != nil && siblingOf(n, mirrored) != nil:
		next.node, next.state = siblingOf(n, mirrored), StateSibling
	default:
		next.node, next.state = n.parent, StateParent
	}
	next.depth = it.depth + next.state.DepthDelta()
	return next
}

// siblingOf returns the sibling of n a walk moves to after having visited n:
// the right sibling of a left child, or the left sibling of a right child for
// mirrored walks. It returns nil if there is none.
func siblingOf[T any](n *Node[T], mirrored bool) *Node[T] {
	p := n.parent
	if mirrored {
		if n == p.right {
			return p.left
		}
		return nil
	}
	if n == p.left {
		return p.right
	}
	return nil
}

// State tells how the iterator arrived at its node.
func (it PrimitiveIterator[T]) State() NodeState {
	return it.state
}

// DepthDelta returns the depth change of the last step.
func (it PrimitiveIterator[T]) DepthDelta() int {
	return it.state.DepthDelta()
}

// Depth returns the depth of the current node, with the root at depth 0.
// Depth is counted relative to the starting point of the walk.
func (it PrimitiveIterator[T]) Depth() int {
	return it.depth
}

// IsEnd reports whether the walk has climbed above the root.
func (it PrimitiveIterator[T]) IsEnd() bool {
	return it.node == nil
}

// Equal reports whether two primitive iterators are at the same node.
func (it PrimitiveIterator[T]) Equal(other PrimitiveIterator[T]) bool {
	return it.node == other.node && (it.node != nil || it.hdr == other.hdr)
}

// Value returns the value of the current node.
func (it PrimitiveIterator[T]) Value() T {
	assert(it.node != nil, "dereferencing end iterator")
	return it.node.value
}

// Ptr returns a pointer to the value of the current node.
func (it PrimitiveIterator[T]) Ptr() *T {
	assert(it.node != nil, "dereferencing end iterator")
	return &it.node.value
}

// Size returns the size of the subtree rooted at the current node.
func (it PrimitiveIterator[T]) Size() int {
	return sizeOf(it.node)
}

// ChildSizes returns the subtree sizes of the current node's children.
func (it PrimitiveIterator[T]) ChildSizes() (left, right int) {
	if it.node == nil {
		return 0, 0
	}
	return sizeOf(it.node.left), sizeOf(it.node.right)
}

// IsLeaf reports whether the current node has no children.
func (it PrimitiveIterator[T]) IsLeaf() bool {
	return it.node != nil && it.node.left == nil && it.node.right == nil
}

// Iterator converts it into an in-order iterator at the same node.
func (it PrimitiveIterator[T]) Iterator() Iterator[T] {
	return Iterator[T]{hdr: it.hdr, node: it.node}
}

// Structure returns the forward structural walk from the root, including
// the revisits of inner nodes, as a sequence of primitive iterators.
func (t *Tree[T]) Structure() iter.Seq[PrimitiveIterator[T]] {
	return func(yield func(PrimitiveIterator[T]) bool) {
		for it := t.PBegin(); !it.IsEnd(); it = it.Next() {
			if !yield(it) {
				return
			}
		}
	}
}
