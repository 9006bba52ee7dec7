/*
Package formatter prints the shape of AB-trees on output devices with
fixed-width fonts. It is meant for debugging and for demonstration
programs, where Graphviz output is too heavy-handed.

Every node is printed on a line of its own, indented by its depth and
colored by the way the structural walk arrived at it:

	* 10 (6)
	  L -1 (2)
	    L 7 (1)
	  R 8 (3)
	    L 16 (1)
	    R 0 (1)

Labels are measured with UAX#11 (character width) on grapheme clusters
(UAX#29), so that wide characters do not break the layout, and are cut off
at the configured line width.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'abtree'
func tracer() tracing.Trace {
	return tracing.Select("abtree")
}
