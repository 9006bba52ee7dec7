package abtree

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Allocator acquires and releases raw node storage.
//
// Allocate returns a zeroed node or an error; the tree constructs the value
// only after storage has been acquired. Release receives nodes which have
// been unlinked from their tree and whose value has already been disposed of.
// Errors returned from Allocate are reported to clients as ErrResourceExhausted.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Release(*Node[T])
}

// --- Heap ------------------------------------------------------------------

// HeapAllocator allocates every node from the Go heap and leaves released
// nodes to the garbage collector.
type HeapAllocator[T any] struct{}

// Allocate returns a new node.
func (HeapAllocator[T]) Allocate() (*Node[T], error) {
	return new(Node[T]), nil
}

// Release drops the node.
func (HeapAllocator[T]) Release(*Node[T]) {}

// --- sync.Pool -------------------------------------------------------------

// PoolAllocator recycles nodes through a sync.Pool. It is safe to share a
// PoolAllocator between trees living on different goroutines.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

// NewPoolAllocator creates a pooling allocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return new(Node[T])
			},
		},
	}
}

// Allocate takes a node from the pool.
func (p *PoolAllocator[T]) Allocate() (*Node[T], error) {
	n := p.pool.Get().(*Node[T])
	*n = Node[T]{}
	return n, nil
}

// Release puts a node back into the pool.
func (p *PoolAllocator[T]) Release(n *Node[T]) {
	*n = Node[T]{}
	p.pool.Put(n)
}

// --- Free list -------------------------------------------------------------

// DefaultFreeListSize is the capacity of free lists created with size <= 0.
const DefaultFreeListSize = 32

// FreeListAllocator keeps a bounded list of released nodes for reuse.
// Several trees may share one free list; access is guarded by a mutex.
type FreeListAllocator[T any] struct {
	mu       sync.Mutex
	freelist []*Node[T]
}

// NewFreeListAllocator creates a free list which caches up to size nodes.
func NewFreeListAllocator[T any](size int) *FreeListAllocator[T] {
	if size <= 0 {
		size = DefaultFreeListSize
	}
	return &FreeListAllocator[T]{freelist: make([]*Node[T], 0, size)}
}

// Allocate returns a cached node, or a new one if the list is empty.
func (f *FreeListAllocator[T]) Allocate() (*Node[T], error) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(Node[T]), nil
	}
	n := f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return n, nil
}

// Release caches a node if there is room left.
func (f *FreeListAllocator[T]) Release(n *Node[T]) {
	*n = Node[T]{}
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
	}
	f.mu.Unlock()
}

// Len returns the number of cached nodes.
func (f *FreeListAllocator[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// --- Arena -----------------------------------------------------------------

// DefaultArenaBlockSize is the number of nodes carved per arena block.
const DefaultArenaBlockSize = 256

// ArenaAllocator carves nodes from contiguous blocks. Released nodes are
// reused before new storage is carved. If a limit is set, the arena never
// holds more than limit nodes and Allocate fails with ErrResourceExhausted
// once all of them are in use.
//
// An ArenaAllocator is not safe for concurrent use.
type ArenaAllocator[T any] struct {
	blockSize int
	limit     int
	carved    int
	block     []Node[T]
	free      []*Node[T]
}

// NewArenaAllocator creates an arena. blockSize <= 0 selects
// DefaultArenaBlockSize, limit == 0 means unlimited.
func NewArenaAllocator[T any](blockSize, limit int) *ArenaAllocator[T] {
	if blockSize <= 0 {
		blockSize = DefaultArenaBlockSize
	}
	return &ArenaAllocator[T]{blockSize: blockSize, limit: limit}
}

// Allocate returns a node from the arena.
func (a *ArenaAllocator[T]) Allocate() (*Node[T], error) {
	if k := len(a.free) - 1; k >= 0 {
		n := a.free[k]
		a.free[k] = nil
		a.free = a.free[:k]
		return n, nil
	}
	if a.limit > 0 && a.carved >= a.limit {
		return nil, errors.Wrapf(ErrResourceExhausted, "arena limit of %d nodes reached", a.limit)
	}
	if len(a.block) == 0 {
		size := a.blockSize
		if a.limit > 0 && a.limit-a.carved < size {
			size = a.limit - a.carved
		}
		a.block = make([]Node[T], size)
	}
	n := &a.block[0]
	a.block = a.block[1:]
	a.carved++
	return n, nil
}

// Release returns a node to the arena.
func (a *ArenaAllocator[T]) Release(n *Node[T]) {
	*n = Node[T]{}
	a.free = append(a.free, n)
}

// InUse returns the number of nodes currently handed out.
func (a *ArenaAllocator[T]) InUse() int {
	return a.carved - len(a.free)
}
