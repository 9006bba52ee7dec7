package abtree

import "github.com/cockroachdb/errors"

// Config configures a tree.
//
// The zero value is a valid configuration: nodes are allocated from the
// heap and values are copied by assignment.
type Config[T any] struct {
	// Allocator provides node storage. Defaults to HeapAllocator.
	Allocator Allocator[T]
	// Copy creates a copy of a value. It is used whenever a value is
	// duplicated into a node (Clone, CopyFrom, InsertN, InsertSlice, …).
	// Defaults to plain assignment.
	Copy func(T) (T, error)
	// Dispose, if set, is called for every value before the storage of its
	// node is released.
	Dispose func(T)
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[T]{}
	}
	if cfg.Copy == nil {
		cfg.Copy = assignCopy[T]
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if a, ok := cfg.Allocator.(*ArenaAllocator[T]); ok && a != nil && a.limit < 0 {
		return errors.Wrapf(ErrInvalidConfig, "arena limit %d is negative", a.limit)
	}
	return nil
}

func assignCopy[T any](v T) (T, error) {
	return v, nil
}
