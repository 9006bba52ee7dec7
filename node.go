package abtree

// Node is the storage unit of a tree. Clients see nodes only when they
// implement an Allocator; all fields are managed by the tree.
//
// parent is a back-reference used for traversal and rebalancing. size is
// 1 + size(left) + size(right).
type Node[T any] struct {
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	size   int
	value  T
}

// header anchors a tree. It replaces the classic sentinel node: root is the
// tree root (nil if empty), leftmost and rightmost cache the extremes.
//
// Iterators reference the header, not the tree, so that they follow their
// nodes through Swap and Move.
type header[T any] struct {
	root      *Node[T]
	leftmost  *Node[T]
	rightmost *Node[T]
}

func (h *header[T]) reset() {
	h.root, h.leftmost, h.rightmost = nil, nil, nil
}

// sizeOf returns the subtree size of n, with 0 for absent nodes.
func sizeOf[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func leftmostOf[T any](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmostOf[T any](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rank returns the in-order position of n within its tree.
func rank[T any](n *Node[T]) int {
	k := sizeOf(n.left)
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.right {
			k += sizeOf(p.left) + 1
		}
	}
	return k
}
