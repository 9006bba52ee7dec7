package abtree

// Rebalancing restores the size invariant
//
//	size(L) >= size(R.left), size(L) >= size(R.right)
//	size(R) >= size(L.left), size(R) >= size(L.right)
//
// for every node with children L and R. Each decision compares cached sizes
// only. A rotation strictly decreases the sum of node depths, therefore the
// recursive maintenance after a rotation terminates.

// replaceChild links repl into the position old holds below its parent (or
// as the root). repl may be nil.
func (t *Tree[T]) replaceChild(old, repl *Node[T]) {
	p := old.parent
	if repl != nil {
		repl.parent = p
	}
	switch {
	case p == nil:
		t.hdr.root = repl
	case old == p.left:
		p.left = repl
	default:
		p.right = repl
	}
}

// rotateLeft lifts n.right into n's position and returns it. The lifted node
// takes over n's size, n's size is recomputed from its new children.
func (t *Tree[T]) rotateLeft(n *Node[T]) *Node[T] {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	t.replaceChild(n, r)
	r.left = n
	n.parent = r
	r.size = n.size
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1
	return r
}

// rotateRight lifts n.left into n's position and returns it.
func (t *Tree[T]) rotateRight(n *Node[T]) *Node[T] {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	t.replaceChild(n, l)
	l.right = n
	n.parent = l
	l.size = n.size
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1
	return l
}

// maintain checks one side of n: with rightSide set, whether a grandchild
// below n.right outgrew n.left; otherwise the mirrored condition. It returns
// the node which ends up in n's position.
//
// After a rotation the nodes that moved are balanced first, then the new
// subtree root, as a rotation may leave a fresh imbalance one level down.
func (t *Tree[T]) maintain(n *Node[T], rightSide bool) *Node[T] {
	if n == nil {
		return nil
	}
	if rightSide {
		r := n.right
		if r == nil {
			return n
		}
		leftSize := sizeOf(n.left)
		switch {
		case leftSize < sizeOf(r.left): // case 1: size(T.left) < size(T.right.left)
			t.rotateRight(r)
			n = t.rotateLeft(n)
		case leftSize < sizeOf(r.right): // case 2: size(T.left) < size(T.right.right)
			n = t.rotateLeft(n)
		default:
			return n
		}
	} else {
		l := n.left
		if l == nil {
			return n
		}
		rightSize := sizeOf(n.right)
		switch {
		case rightSize < sizeOf(l.right): // case 3: size(T.right) < size(T.left.right)
			t.rotateLeft(l)
			n = t.rotateRight(n)
		case rightSize < sizeOf(l.left): // case 4: size(T.right) < size(T.left.left)
			n = t.rotateRight(n)
		default:
			return n
		}
	}
	t.balance(n.left)
	t.balance(n.right)
	return t.balance(n)
}

// balance checks both sides of n.
func (t *Tree[T]) balance(n *Node[T]) *Node[T] {
	n = t.maintain(n, false)
	return t.maintain(n, true)
}

// insertRebalance is applied to every ancestor of a new node, bottom-up.
// Only the side the insertion went to has grown, so only that side may
// violate the invariant.
func (t *Tree[T]) insertRebalance(n *Node[T], cameFromRight bool) *Node[T] {
	return t.maintain(n, cameFromRight)
}

// eraseRebalance is applied to every ancestor of a removed node, bottom-up.
// The side the node was removed from has shrunk, so the opposite side may
// now be too heavy.
func (t *Tree[T]) eraseRebalance(n *Node[T], childWasRight bool) *Node[T] {
	return t.maintain(n, !childWasRight)
}

// insertFixup rebalances the path from a freshly linked node up to the root.
func (t *Tree[T]) insertFixup(child *Node[T]) {
	for p := child.parent; p != nil; p = child.parent {
		child = t.insertRebalance(p, child == p.right)
	}
}

// eraseFixup rebalances the path from p up to the root, where p has lost a
// node on the side given by childWasRight.
func (t *Tree[T]) eraseFixup(p *Node[T], childWasRight bool) {
	for p != nil {
		n := t.eraseRebalance(p, childWasRight)
		p = n.parent
		if p != nil {
			childWasRight = n == p.right
		}
	}
}
