package abtree

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Tree is a positional sequence container backed by a size-balanced binary
// tree.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid, empty tree using the default configuration.
//
// Positions are 0-based indices into the sequence. Values are kept in the
// order they have been inserted at, the tree never compares values.
type Tree[T any] struct {
	cfg Config[T]
	hdr *header[T]
}

// New creates an empty tree with a validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized(), hdr: &header[T]{}}, nil
}

// Of creates a tree with default configuration holding values.
func Of[T any](values ...T) *Tree[T] {
	t := &Tree[T]{}
	err := t.Assign(values...)
	assert(err == nil, "Of: heap allocation with plain copies cannot fail")
	return t
}

// FromSeq creates a tree from a sequence of values.
func FromSeq[T any](cfg Config[T], seq iter.Seq[T]) (*Tree[T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = t.AssignSeq(seq); err != nil {
		return nil, err
	}
	return t, nil
}

// header returns the tree's header, initializing a zero tree on first use.
func (t *Tree[T]) header() *header[T] {
	if t.hdr == nil {
		t.hdr = &header[T]{}
		t.cfg = t.cfg.normalized()
	}
	return t.hdr
}

// Config returns the effective configuration of the tree.
func (t *Tree[T]) Config() Config[T] {
	t.header()
	return t.cfg
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.hdr == nil || t.hdr.root == nil
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.hdr.root.size
}

// --- Node creation ---------------------------------------------------------

// createNode acquires storage and then constructs the node's value. Nothing
// is linked before both steps succeed; on failure the storage is given back.
func (t *Tree[T]) createNode(construct func() (T, error)) (*Node[T], error) {
	t.header()
	n, err := t.cfg.Allocator.Allocate()
	if err != nil {
		tracer().Errorf("abtree: cannot allocate node: %v", err)
		if !errors.Is(err, ErrResourceExhausted) {
			err = errors.Mark(err, ErrResourceExhausted)
		}
		return nil, err
	}
	assert(n != nil, "allocator returned nil node without error")
	v, err := construct()
	if err != nil {
		tracer().Errorf("abtree: cannot construct value: %v", err)
		t.cfg.Allocator.Release(n)
		return nil, errors.Mark(errors.Wrap(err, "abtree: constructing node value"), ErrConstruction)
	}
	n.value = v
	return n, nil
}

func (t *Tree[T]) valueNode(v T) (*Node[T], error) {
	return t.createNode(func() (T, error) { return v, nil })
}

func (t *Tree[T]) copyNode(v T) (*Node[T], error) {
	return t.createNode(func() (T, error) { return t.cfg.Copy(v) })
}

// destroyNode disposes of the node's value and releases its storage. The node
// must have been unlinked.
func (t *Tree[T]) destroyNode(n *Node[T]) {
	if t.cfg.Dispose != nil {
		t.cfg.Dispose(n.value)
	}
	*n = Node[T]{}
	t.cfg.Allocator.Release(n)
}

// --- Whole-tree operations -------------------------------------------------

// Clear removes all values.
func (t *Tree[T]) Clear() {
	h := t.header()
	if h.root == nil {
		return
	}
	tracer().Debugf("abtree: clearing tree of %d nodes", h.root.size)
	t.destroyAll(h.root)
	h.reset()
}

// destroyAll tears down the subtree at root bottom-up without recursion.
func (t *Tree[T]) destroyAll(root *Node[T]) {
	stop := root.parent
	cur := root
	for cur != stop {
		for cur.left != nil {
			cur = cur.left
		}
		if cur.right != nil {
			cur = cur.right
			continue
		}
		next := cur.parent
		if next != stop {
			if cur == next.left {
				next.left = nil
			} else {
				next.right = nil
			}
		}
		t.destroyNode(cur)
		cur = next
	}
}

// Clone returns a deep copy of the tree, using the same configuration.
// Values are duplicated with Config.Copy. If a copy fails, no tree is
// returned and t is left untouched.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	t.header()
	c := &Tree[T]{cfg: t.cfg, hdr: &header[T]{}}
	if err := c.copyFrom(t.hdr.root); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of t with a deep copy of other. If a copy
// fails, t is left empty.
func (t *Tree[T]) CopyFrom(other *Tree[T]) error {
	if t == other {
		return nil
	}
	t.Clear()
	if other.IsEmpty() {
		return nil
	}
	return t.copyFrom(other.hdr.root)
}

// copyFrom duplicates the subtree at src into the empty tree t. The walk is
// iterative: descend left, else right, else step to the right sibling, else
// ascend. Sizes are taken from the source.
func (t *Tree[T]) copyFrom(src *Node[T]) error {
	if src == nil {
		return nil
	}
	h := t.header()
	assert(h.root == nil, "copyFrom requires an empty tree")
	tracer().Debugf("abtree: copying tree of %d nodes", src.size)
	clone := func(s *Node[T]) (*Node[T], error) {
		n, err := t.copyNode(s.value)
		if err != nil {
			return nil, err
		}
		n.size = s.size
		return n, nil
	}
	fail := func(err error) error {
		if h.root != nil {
			t.destroyAll(h.root)
		}
		h.reset()
		return err
	}
	srcRoot := src
	dst, err := clone(src)
	if err != nil {
		return fail(err)
	}
	h.root = dst
	descend := true
	for {
		switch {
		case descend && src.left != nil:
			src = src.left
			n, err := clone(src)
			if err != nil {
				return fail(err)
			}
			n.parent, dst.left = dst, n
			dst = n
		case descend && src.right != nil:
			src = src.right
			n, err := clone(src)
			if err != nil {
				return fail(err)
			}
			n.parent, dst.right = dst, n
			dst = n
		case src != srcRoot && src.parent.right != nil && src != src.parent.right:
			src = src.parent.right
			n, err := clone(src)
			if err != nil {
				return fail(err)
			}
			n.parent, dst.parent.right = dst.parent, n
			dst = n
			descend = true
		case src == srcRoot:
			h.leftmost = leftmostOf(h.root)
			h.rightmost = rightmostOf(h.root)
			return nil
		default:
			src, dst = src.parent, dst.parent
			descend = false
		}
	}
}

// Swap exchanges the contents of two trees in O(1). Iterators stay valid and
// keep referring to their nodes, which now belong to the other tree.
// Configurations are exchanged as well, so that nodes are always released to
// the allocator they came from.
func (t *Tree[T]) Swap(other *Tree[T]) {
	if t == other {
		return
	}
	t.header()
	other.header()
	t.hdr, other.hdr = other.hdr, t.hdr
	t.cfg, other.cfg = other.cfg, t.cfg
}

// Move transfers the contents of t to a new tree in O(1), leaving t empty.
func (t *Tree[T]) Move() *Tree[T] {
	t.header()
	m := &Tree[T]{cfg: t.cfg, hdr: &header[T]{}}
	m.Swap(t)
	return m
}

// MoveFrom clears t and transfers the contents of other to t in O(1),
// leaving other empty.
func (t *Tree[T]) MoveFrom(other *Tree[T]) {
	if t == other {
		return
	}
	t.Clear()
	t.Swap(other)
}

// Assign replaces the contents of t with copies of values.
func (t *Tree[T]) Assign(values ...T) error {
	t.Clear()
	_, err := t.InsertSlice(t.End(), values)
	return err
}

// AssignN replaces the contents of t with n copies of v.
func (t *Tree[T]) AssignN(n int, v T) error {
	t.Clear()
	_, err := t.InsertN(t.End(), n, v)
	return err
}

// AssignSeq replaces the contents of t with copies of the values of seq.
func (t *Tree[T]) AssignSeq(seq iter.Seq[T]) error {
	t.Clear()
	_, err := t.InsertSeq(t.End(), seq)
	return err
}
