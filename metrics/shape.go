package metrics

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/npillmayer/abtree"
	"github.com/olekukonko/tablewriter"
)

// maxRecordedDepth is the largest depth the depth histogram can hold.
const maxRecordedDepth = 1024

// Shape describes the form of a tree.
type Shape struct {
	Nodes  int // number of nodes
	Height int // number of levels, 0 for an empty tree
	Leaves int // nodes without children
	// Levels[d] is the number of nodes at depth d.
	Levels []int
	// MaxSkew is the largest value of |size(left)-size(right)| / size over
	// all nodes.
	MaxSkew float64
	// Depths holds the depth distribution of all nodes.
	Depths *hdrhistogram.Histogram
}

// Measure walks the structure of tree and collects its shape.
func Measure[T any](tree *abtree.Tree[T]) Shape {
	shape := Shape{Depths: hdrhistogram.New(0, maxRecordedDepth, 3)}
	for it := range tree.Structure() {
		if it.State() == abtree.StateParent {
			continue
		}
		d := it.Depth()
		shape.Nodes++
		if err := shape.Depths.RecordValue(int64(d)); err != nil {
			tracer().Errorf("metrics: cannot record depth %d: %v", d, err)
		}
		for len(shape.Levels) <= d {
			shape.Levels = append(shape.Levels, 0)
		}
		shape.Levels[d]++
		if it.IsLeaf() {
			shape.Leaves++
		}
		l, r := it.ChildSizes()
		if skew := float64(abs(l-r)) / float64(it.Size()); skew > shape.MaxSkew {
			shape.MaxSkew = skew
		}
	}
	shape.Height = len(shape.Levels)
	return shape
}

// MeanDepth returns the average depth of a node.
func (s Shape) MeanDepth() float64 {
	return s.Depths.Mean()
}

// DepthAt returns the depth at quantile q (0 < q <= 100).
func (s Shape) DepthAt(q float64) int {
	return int(s.Depths.ValueAtQuantile(q))
}

// HeightBound returns an upper bound for the height of a size-balanced tree
// holding n nodes.
func HeightBound(n int) int {
	return 2 * bits.Len(uint(n))
}

// WriteTable renders the shape as a table.
func (s Shape) WriteTable(w io.Writer) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Value"})
	tbl.Append([]string{"nodes", strconv.Itoa(s.Nodes)})
	tbl.Append([]string{"height", strconv.Itoa(s.Height)})
	tbl.Append([]string{"height bound", strconv.Itoa(HeightBound(s.Nodes))})
	tbl.Append([]string{"leaves", strconv.Itoa(s.Leaves)})
	tbl.Append([]string{"mean depth", fmt.Sprintf("%.2f", s.MeanDepth())})
	tbl.Append([]string{"p50 depth", strconv.Itoa(s.DepthAt(50))})
	tbl.Append([]string{"p99 depth", strconv.Itoa(s.DepthAt(99))})
	tbl.Append([]string{"max skew", fmt.Sprintf("%.3f", s.MaxSkew)})
	tbl.Render()
}

// WriteLevels renders the number of nodes per level as a table.
func (s Shape) WriteLevels(w io.Writer) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Depth", "Nodes", "Capacity"})
	for d, n := range s.Levels {
		capacity := "-"
		if d < 63 {
			capacity = strconv.Itoa(1 << d)
		}
		tbl.Append([]string{strconv.Itoa(d), strconv.Itoa(n), capacity})
	}
	tbl.Render()
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
