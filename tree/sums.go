package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/recur/seq"
)

// PathSums returns the sums of entries along every root-to-leaf path,
// ordered by a depth-first walk over the children, left to right. The
// empty tree has no paths; a leaf has exactly one, its own entry.
func PathSums[T Number](t Tree[T]) seq.Sequence[T] {
	if t.IsEmpty() {
		return seq.Empty[T]()
	}
	entry := t.Entry()
	if t.IsLeaf() {
		return seq.New(entry)
	}
	// path sums of each subtree, then the root's entry added onto every one
	below := seq.Empty[seq.Sequence[T]]()
	children := t.node.children
	for i := len(children) - 1; i >= 0; i-- {
		below = seq.Cons(PathSums(children[i]), below)
	}
	sums := seq.Map(func(sum T) T {
		return entry + sum
	}, seq.Concat(below))
	tracer().Debugf("%v contributes %d path sums", t, sums.Len())
	return sums
}

// Leaves counts the leaf nodes of a tree.
func Leaves[T Number](t Tree[T]) int {
	if t.IsEmpty() {
		return 0
	}
	if t.IsLeaf() {
		return 1
	}
	n := 0
	for _, c := range t.node.children {
		n += Leaves(c)
	}
	return n
}
