/*
Package abtree implements a positional sequence container on top of a
size-balanced binary tree.

AB-Trees

An AB-tree stores a sequence of values, not a sorted set. Every node carries
the size of the subtree below it, which serves two purposes: it locates the
k-th element of the sequence in O(log n) (“select”), and it drives the
rebalancing decisions. For every node T with children L and R the tree keeps

	size(L) >= size(R.left),  size(L) >= size(R.right)
	size(R) >= size(L.left),  size(R) >= size(L.right)

This invariant is stronger than plain height balance and keeps the depth of
the tree logarithmic. Restoring it after an insertion or deletion requires
only local comparisons of cached sizes, followed by single or double
rotations.

A tree therefore combines the operations of a random access array with those
of a doubly linked list:

	Operation          |   Tree          |  Slice
	-------------------+-----------------+--------
	Index              |   O(log n)      |   O(1)
	Front / Back       |   O(1)          |   O(1)
	Iterate            |   O(n)          |   O(n)
	Push Front         |   O(log n)      |   O(n)
	Insert at index    |   O(log n)      |   O(n)
	Erase at index     |   O(log n)      |   O(n)
	Swap / Move        |   O(1)          |   O(1)

Trees are not safe for concurrent mutation. Clients which share a tree
between goroutines have to provide external locking.

Node storage is acquired through an Allocator, which separates raw storage
from value construction. Failing to create a node, either because storage is
exhausted or because the value constructor fails, never changes the tree.

Two iteration protocols are offered: the in-order Iterator visits the values
in sequence order, and the PrimitiveIterator walks the structure of the tree
and reports how each node has been reached. The latter is used for
structural exports like Tree2Dot.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package abtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'abtree'
func tracer() tracing.Trace {
	return tracing.Select("abtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
