package abtree_test

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/abtree"
	"github.com/npillmayer/abtree/metrics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestHeightStaysWithinBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abtree")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(1449168817))
	tree := &abtree.Tree[int]{}
	for i := 0; i < 5000; i++ {
		_, err := tree.InsertAt(rng.Intn(tree.Len()+1), i)
		require.NoError(t, err)
		if i%97 == 0 {
			shape := metrics.Measure(tree)
			require.LessOrEqual(t, shape.Height, metrics.HeightBound(tree.Len()), "after %d insertions", i+1)
		}
	}
	for tree.Len() > 0 {
		require.NoError(t, tree.EraseAt(rng.Intn(tree.Len())))
		if tree.Len()%89 == 0 {
			shape := metrics.Measure(tree)
			require.LessOrEqual(t, shape.Height, metrics.HeightBound(tree.Len()), "at size %d", tree.Len())
		}
	}
}
