/*
Package tree implements an immutable multi-way tree of numeric entries.

A tree node pairs an entry with an ordered list of child trees; a node
without children is a leaf, and the zero value of Tree is the empty tree.
Trees are built bottom-up from their children and never modified
afterwards, so they may be shared freely.

PathSums walks a tree and produces the sum of entries along every
root-to-leaf path.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'recur.tree'.
func tracer() tracing.Trace {
	return tracing.Select("recur.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("recur.tree: "+msg, msgargs...)
		panic(msg)
	}
}
