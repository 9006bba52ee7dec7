package metrics

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/abtree"
)

// CountingMetric is a type for metrics that count items in the values of a
// tree. Possible items may be words, pattern matches, emojis, …
type CountingMetric[T any] interface {
	Count(T) int
}

// CountFunc adapts a function to a CountingMetric.
type CountFunc[T any] func(T) int

// Count calls f(v).
func (f CountFunc[T]) Count(v T) int {
	return f(v)
}

// Count applies a counting metric to the values at positions [i, j) and sums
// up the results.
func Count[T any](tree *abtree.Tree[T], i, j int, metric CountingMetric[T]) (int, error) {
	if err := checkRange(tree, i, j); err != nil {
		return -1, errors.Wrap(err, "metrics.Count could not be applied")
	}
	n := 0
	it := tree.Select(i)
	for k := i; k < j; k++ {
		n += metric.Count(it.Value())
		it = it.Next()
	}
	return n, nil
}

// ---------------------------------------------------------------------------

// A ScanningMetric searches a value for items (such as words, pattern
// matches, …) and returns their locations as [start, end) pairs.
type ScanningMetric[T any] interface {
	Locations(T) [][]int
}

// Location lists the items a scanning metric found in the value at Index.
type Location struct {
	Index int
	Spans [][]int
}

// Find applies a scanning metric to the values at positions [i, j). Values
// without any item are left out of the result.
func Find[T any](tree *abtree.Tree[T], i, j int, metric ScanningMetric[T]) ([]Location, error) {
	if err := checkRange(tree, i, j); err != nil {
		return []Location{}, errors.Wrap(err, "metrics.Find could not be applied")
	}
	var locs []Location
	it := tree.Select(i)
	for k := i; k < j; k++ {
		if spans := metric.Locations(it.Value()); len(spans) > 0 {
			locs = append(locs, Location{Index: k, Spans: spans})
		}
		it = it.Next()
	}
	tracer().Debugf("metrics.Find: %d of %d values carry items", len(locs), j-i)
	return locs, nil
}

func checkRange[T any](tree *abtree.Tree[T], i, j int) error {
	if i < 0 || j < i || j > tree.Len() {
		return errors.Wrapf(abtree.ErrOutOfRange, "range [%d, %d), size %d", i, j, tree.Len())
	}
	return nil
}
