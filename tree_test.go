package abtree

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	var tree Tree[string]
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("zero tree should be empty")
	}
	if !tree.Begin().Equal(tree.End()) {
		t.Errorf("Begin() of empty tree should equal End()")
	}
	if err := tree.PushBack("a"); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 1 || tree.Get(0) != "a" {
		t.Errorf("expected [a], have %v", tree.Slice())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	_, err := New(Config[int]{Allocator: NewArenaAllocator[int](4, -1)})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, have %v", err)
	}
}

func TestOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(7, 1, 8, 0)
	if !slices.Equal(tree.Slice(), []int{7, 1, 8, 0}) {
		t.Errorf("expected [7 1 8 0], have %v", tree.Slice())
	}
	if tree.Len() != 4 {
		t.Errorf("expected size 4, have %d", tree.Len())
	}
}

func TestFromSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree, err := FromSeq(Config[int]{}, slices.Values([]int{3, 1, 2}))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tree.Slice(), []int{3, 1, 2}) {
		t.Errorf("expected [3 1 2], have %v", tree.Slice())
	}
}

func TestPushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := &Tree[int]{}
	for i := 0; i < 10; i++ {
		tree.PushBack(i)
		tree.PushFront(-i - 1)
	}
	if tree.Len() != 20 {
		t.Fatalf("expected 20 values, have %d", tree.Len())
	}
	if f, _ := tree.Front(); f != -10 {
		t.Errorf("expected front -10, have %d", f)
	}
	if b, _ := tree.Back(); b != 9 {
		t.Errorf("expected back 9, have %d", b)
	}
	for i := 0; i < 10; i++ {
		if !tree.PopFront() || !tree.PopBack() {
			t.Fatalf("pop on non-empty tree failed")
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("expected tree to be empty, have %v", tree.Slice())
	}
	if tree.PopFront() || tree.PopBack() {
		t.Errorf("pop on empty tree should report false")
	}
}

func TestCheckedAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := &Tree[int]{}
	if _, err := tree.At(0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("At on empty tree: expected ErrInvalidState, have %v", err)
	}
	if _, err := tree.Back(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Back on empty tree: expected ErrInvalidState, have %v", err)
	}
	tree.Assign(1, 2, 3)
	if _, err := tree.At(tree.Len()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(Len()): expected ErrOutOfRange, have %v", err)
	}
	if _, err := tree.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(-1): expected ErrOutOfRange, have %v", err)
	}
	if v, err := tree.At(2); err != nil || v != 3 {
		t.Errorf("At(2): expected 3, have %d (%v)", v, err)
	}
	*tree.Ptr(1) = 20
	if tree.Get(1) != 20 {
		t.Errorf("update through Ptr got lost")
	}
	if err := tree.EraseRange(1, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("EraseRange beyond end: expected ErrOutOfRange, have %v", err)
	}
	if err := tree.EraseRange(0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("EraseRange with negative count: expected ErrOutOfRange, have %v", err)
	}
	if err := tree.EraseRange(3, 0); err != nil {
		t.Errorf("empty range at end should be accepted, have %v", err)
	}
	if tree.Len() != 3 {
		t.Errorf("failed range erasures must not change the tree")
	}
}

func TestInsertAtIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(1, 5)
	pos := tree.Select(1)
	it, err := tree.InsertSlice(pos, []int{2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if it.Value() != 2 || it.Index() != 1 {
		t.Errorf("expected iterator to first inserted value at 1, have %d at %d", it.Value(), it.Index())
	}
	if pos.Value() != 5 || pos.Index() != 4 {
		t.Errorf("anchor iterator should stay at 5, is at %d", pos.Index())
	}
	it, _ = tree.InsertN(tree.End(), 2, 9)
	if it.Index() != 5 {
		t.Errorf("expected InsertN to return index 5, have %d", it.Index())
	}
	it, _ = tree.InsertSlice(tree.Begin(), nil)
	if !it.Equal(tree.Begin()) {
		t.Errorf("empty insertion should return the anchor")
	}
	tree.InsertNAt(0, 1, 0)
	want := []int{0, 1, 2, 3, 4, 5, 9, 9}
	if !slices.Equal(tree.Slice(), want) {
		t.Errorf("expected %v, have %v", want, tree.Slice())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertForeignIteratorPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	a, b := Of(1), Of(2)
	defer func() {
		if recover() == nil {
			t.Errorf("expected insertion at foreign iterator to panic")
		}
	}()
	a.Insert(b.Begin(), 3)
}

func TestEmplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := &Tree[string]{}
	tree.EmplaceBack(func() (string, error) { return "b", nil })
	tree.EmplaceFront(func() (string, error) { return "a", nil })
	it, err := tree.EmplaceAt(2, func() (string, error) { return "c", nil })
	if err != nil || it.Value() != "c" {
		t.Fatalf("EmplaceAt failed: %v", err)
	}
	boom := errors.New("boom")
	_, err = tree.EmplaceAt(1, func() (string, error) { return "", boom })
	if !errors.Is(err, ErrConstruction) || !errors.Is(err, boom) {
		t.Errorf("expected construction error wrapping cause, have %v", err)
	}
	if _, err = tree.EmplaceAt(4, func() (string, error) { return "x", nil }); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, have %v", err)
	}
	if !slices.Equal(tree.Slice(), []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], have %v", tree.Slice())
	}
}

func TestEraseSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(0, 1, 2, 3, 4, 5, 6)
	last := tree.EraseSpan(tree.Select(2), tree.Select(5))
	if last.Value() != 5 {
		t.Errorf("expected EraseSpan to return iterator to 5, have %d", last.Value())
	}
	if !slices.Equal(tree.Slice(), []int{0, 1, 5, 6}) {
		t.Errorf("expected [0 1 5 6], have %v", tree.Slice())
	}
	tree.EraseSpan(tree.Begin(), tree.Begin())
	if tree.Len() != 4 {
		t.Errorf("empty span should not erase anything")
	}
	end := tree.EraseSpan(tree.Begin(), tree.End())
	if !end.IsEnd() || !tree.IsEmpty() {
		t.Errorf("erasing everything should leave an empty tree")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := &Tree[int]{}
	for i := 0; i < 100; i++ {
		tree.InsertAt(i/2, i)
	}
	c, err := tree.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(c.Slice(), tree.Slice()) || c.Len() != tree.Len() {
		t.Fatalf("clone differs from original")
	}
	// the copy has the same shape as the original
	ps, pc := tree.PBegin(), c.PBegin()
	for !ps.IsEnd() {
		if ps.State() != pc.State() || ps.Value() != pc.Value() || ps.Size() != pc.Size() {
			t.Fatalf("clone has a different structure at depth %d", ps.Depth())
		}
		ps, pc = ps.Next(), pc.Next()
	}
	c.Set(0, -1)
	c.PushBack(1000)
	if tree.Get(0) == -1 || tree.Len() != 100 {
		t.Errorf("mutating the clone changed the original")
	}
	var d Tree[int]
	if err := d.CopyFrom(c); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(d.Slice(), c.Slice()) {
		t.Errorf("CopyFrom produced a different sequence")
	}
	if err := d.CopyFrom(&Tree[int]{}); err != nil || !d.IsEmpty() {
		t.Errorf("copying an empty tree should leave an empty tree")
	}
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	src := Of(1, 2, 3)
	it := src.Select(1)
	dst := src.Move()
	if !src.IsEmpty() || src.Len() != 0 {
		t.Errorf("source should be empty after move")
	}
	if !slices.Equal(dst.Slice(), []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], have %v", dst.Slice())
	}
	dst.Erase(it)
	if !slices.Equal(dst.Slice(), []int{1, 3}) {
		t.Errorf("iterator should have followed its node, have %v", dst.Slice())
	}
	var other Tree[int]
	other.PushBack(9)
	other.MoveFrom(dst)
	if !dst.IsEmpty() || !slices.Equal(other.Slice(), []int{1, 3}) {
		t.Errorf("MoveFrom: expected [1 3] and empty source, have %v / %v", other.Slice(), dst.Slice())
	}
}

func TestSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	a, b := Of(1, 2), Of(3, 4, 5)
	ia := a.Last()
	a.Swap(b)
	if a.Len() != 3 || b.Len() != 2 {
		t.Errorf("sizes not exchanged")
	}
	if ia.Value() != 2 || ia.Index() != 1 {
		t.Errorf("iterator should still point to 2")
	}
	b.Insert(ia, 7)
	if !slices.Equal(b.Slice(), []int{1, 7, 2}) {
		t.Errorf("expected [1 7 2], have %v", b.Slice())
	}
}

func TestAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(1, 2, 3)
	tree.AssignN(4, 7)
	if !slices.Equal(tree.Slice(), []int{7, 7, 7, 7}) {
		t.Errorf("expected four 7s, have %v", tree.Slice())
	}
	tree.AssignSeq(slices.Values([]int{5, 6}))
	if !slices.Equal(tree.Slice(), []int{5, 6}) {
		t.Errorf("expected [5 6], have %v", tree.Slice())
	}
}

func TestRankRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := &Tree[int]{}
	for i := 0; i < 257; i++ {
		tree.InsertAt(i/3, i)
	}
	k := 0
	for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
		if s := tree.Select(k); !s.Equal(it) {
			t.Fatalf("Select(%d) does not match %d-th successor of Begin()", k, k)
		}
		if it.Index() != k {
			t.Fatalf("Index() = %d, expected %d", it.Index(), k)
		}
		k++
	}
	if k != tree.Len() {
		t.Errorf("iterated %d values, tree has %d", k, tree.Len())
	}
	if tree.End().Index() != tree.Len() {
		t.Errorf("End().Index() should equal Len()")
	}
	if !tree.Select(tree.Len()).IsEnd() {
		t.Errorf("Select(Len()) should be End()")
	}
}
