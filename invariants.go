package abtree

import "github.com/cockroachdb/errors"

// Check validates the structural invariants of the tree: parent links,
// subtree sizes, the size-balance condition and the cached extremes.
// Violations are reported as ErrInvalidState.
//
// Check visits every node and is meant to be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return errors.Wrap(ErrInvalidState, "nil tree")
	}
	h := t.hdr
	if h == nil || h.root == nil {
		if h != nil && (h.leftmost != nil || h.rightmost != nil) {
			return errors.Wrap(ErrInvalidState, "empty tree caches extremes")
		}
		return nil
	}
	if h.root.parent != nil {
		return errors.Wrap(ErrInvalidState, "root has a parent")
	}
	if _, err := checkNode(h.root); err != nil {
		return err
	}
	if h.leftmost != leftmostOf(h.root) {
		return errors.Wrap(ErrInvalidState, "stale leftmost")
	}
	if h.rightmost != rightmostOf(h.root) {
		return errors.Wrap(ErrInvalidState, "stale rightmost")
	}
	return nil
}

func checkNode[T any](n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, errors.Wrap(ErrInvalidState, "broken parent link of left child")
	}
	if n.right != nil && n.right.parent != n {
		return 0, errors.Wrap(ErrInvalidState, "broken parent link of right child")
	}
	ls, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rs, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if n.size != ls+rs+1 {
		return 0, errors.Wrapf(ErrInvalidState, "size mismatch (%d != %d)", n.size, ls+rs+1)
	}
	if r := n.right; r != nil && (ls < sizeOf(r.left) || ls < sizeOf(r.right)) {
		return 0, errors.Wrapf(ErrInvalidState, "left subtree of size %d is outweighed by a nephew (%d, %d)",
			ls, sizeOf(r.left), sizeOf(r.right))
	}
	if l := n.left; l != nil && (rs < sizeOf(l.left) || rs < sizeOf(l.right)) {
		return 0, errors.Wrapf(ErrInvalidState, "right subtree of size %d is outweighed by a nephew (%d, %d)",
			rs, sizeOf(l.left), sizeOf(l.right))
	}
	return n.size, nil
}
