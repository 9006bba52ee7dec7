/*
Package textfile loads UTF-8 text files as AB-trees of lines.

Reading the file and building the tree are decoupled: a background goroutine
reads the file fragment by fragment and broadcasts every fragment, while the
calling goroutine splits fragments into lines and appends them to the tree.
Clients see a synchronous API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'abtree'
func tracer() tracing.Trace {
	return tracing.Select("abtree")
}
