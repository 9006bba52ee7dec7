/*
Package metrics provides measurements on AB-trees.

There are two kinds of measurements: metrics on the values held by a tree,
applied to a range of positions (counting and scanning metrics), and shape
statistics of the tree itself, gathered with a structural walk.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'abtree'
func tracer() tracing.Trace {
	return tracing.Select("abtree")
}
