package abtree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidState signals checked element access on an empty tree.
	ErrInvalidState = errors.New("abtree: tree is empty")
	// ErrOutOfRange signals a positional index outside of the tree's bounds.
	ErrOutOfRange = errors.New("abtree: index out of range")
	// ErrResourceExhausted signals that an allocator could not provide node storage.
	ErrResourceExhausted = errors.New("abtree: node storage exhausted")
	// ErrConstruction signals that a value constructor or copy function failed
	// while a node was being built.
	ErrConstruction = errors.New("abtree: value construction failed")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("abtree: invalid configuration")
)

// checkIndex validates a positional index against a tree of length n.
// Insertion positions may equal n, element positions may not.
func checkIndex(i, n int, insertion bool) error {
	if !insertion && n == 0 {
		return errors.Wrapf(ErrInvalidState, "index %d", i)
	}
	limit := n
	if insertion {
		limit = n + 1
	}
	if i < 0 || i >= limit {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, n)
	}
	return nil
}
