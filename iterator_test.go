package abtree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(1, 2, 3)
	end := tree.End()
	if v := end.Prev().Value(); v != 3 {
		t.Errorf("stepping back from End() should reach 3, reached %d", v)
	}
	if v := end.Next().Value(); v != 1 {
		t.Errorf("stepping forward from End() should reach 1, reached %d", v)
	}
	if !tree.Begin().Prev().IsEnd() {
		t.Errorf("stepping back from Begin() should reach End()")
	}
	if !tree.Last().Next().IsEnd() {
		t.Errorf("stepping forward from Last() should reach End()")
	}
	if tree.End().Equal(Of(1).End()) {
		t.Errorf("end iterators of different trees should differ")
	}
	var values []int
	for it := tree.Last(); !it.IsEnd(); it = it.Prev() {
		values = append(values, it.Value())
	}
	if !slices.Equal(values, []int{3, 2, 1}) {
		t.Errorf("expected reverse order [3 2 1], have %v", values)
	}
	if it := tree.Begin(); it.Size() != 3 {
		t.Errorf("iterator should report tree size 3, reports %d", it.Size())
	}
}

func TestIteratorUpdates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of("a", "b", "c")
	it := tree.Select(1)
	it.Set("B")
	*it.Next().Ptr() = "C"
	if !slices.Equal(tree.Slice(), []string{"a", "B", "C"}) {
		t.Errorf("expected [a B C], have %v", tree.Slice())
	}
	// iterators survive unrelated rebalancing
	for i := 0; i < 50; i++ {
		tree.PushFront("x")
	}
	if it.Value() != "B" || it.Index() != 51 {
		t.Errorf("iterator lost its node: %q at %d", it.Value(), it.Index())
	}
	next := tree.Erase(it)
	if next.Value() != "C" {
		t.Errorf("Erase should return the successor, returned %q", next.Value())
	}
}

func TestAllStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(10, 11, 12, 13)
	var seen []int
	for i, v := range tree.All() {
		if v != 10+i {
			t.Errorf("index %d carries %d", i, v)
		}
		seen = append(seen, v)
		if i == 1 {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected iteration to stop after 2 values, saw %d", len(seen))
	}
}

func TestPrimitiveWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := Of(1, 2, 3)
	type step struct {
		value int
		state NodeState
		depth int
	}
	want := []step{
		{2, StateRoot, 0},
		{1, StateLeft, 1},
		{3, StateSibling, 1},
		{2, StateParent, 0},
	}
	var have []step
	for it := range tree.Structure() {
		have = append(have, step{it.Value(), it.State(), it.Depth()})
	}
	if !slices.Equal(have, want) {
		t.Errorf("expected walk %v, have %v", want, have)
	}
	end := tree.PBegin()
	for i := 0; i < 4; i++ {
		end = end.Next()
	}
	if !end.IsEnd() || !end.Equal(tree.PEnd()) || end.Depth() != -1 {
		t.Errorf("walk should end above the root at PEnd()")
	}
	if !end.Next().Equal(tree.PBegin()) {
		t.Errorf("stepping from PEnd() should restart at the root")
	}
	if !(&Tree[int]{}).PBegin().IsEnd() {
		t.Errorf("PBegin() of an empty tree should be PEnd()")
	}
}

func TestPrimitiveWalkVisitsEveryNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	tree := &Tree[int]{}
	for i := 0; i < 200; i++ {
		tree.InsertAt(i/3, i)
	}
	visits := make(map[int]int)
	depth := 0
	for it := range tree.Structure() {
		depth += it.DepthDelta()
		if depth != it.Depth() {
			t.Fatalf("accumulated depth deltas %d differ from depth %d", depth, it.Depth())
		}
		if it.State() != StateParent {
			visits[it.Value()]++
		}
		l, r := it.ChildSizes()
		if it.Size() != l+r+1 {
			t.Fatalf("inconsistent sizes at %d", it.Value())
		}
	}
	if len(visits) != 200 {
		t.Errorf("expected 200 distinct nodes on the way down, have %d", len(visits))
	}
	for v, n := range visits {
		if n != 1 {
			t.Errorf("node %d entered %d times", v, n)
		}
	}
}

func TestNodeStateDepthDelta(t *testing.T) {
	deltas := map[NodeState]int{
		StateRoot: 0, StateParent: -1, StateLeft: 1, StateRight: 1, StateSibling: 0,
	}
	for s, d := range deltas {
		if s.DepthDelta() != d {
			t.Errorf("state %s: expected depth delta %d, have %d", s, d, s.DepthDelta())
		}
	}
}
