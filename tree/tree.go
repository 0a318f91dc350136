package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Number matches the entry types a tree can sum over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Tree is an immutable multi-way tree. The zero value is the empty tree:
//
//     var t tree.Tree[int]                     // empty
//     t = tree.Make(3, tree.Leaf(7))           // 3 with a single leaf child
//
// Trees are value-like; copying or sharing one never requires a deep copy.
type Tree[T Number] struct {
	node *tnode[T]
}

// tnode is the single cell a non-empty tree is made of. children never
// holds empty trees.
type tnode[T Number] struct {
	entry    T
	children []Tree[T]
}

// Make constructs a node from an entry and an ordered list of child
// trees. Empty trees among the children are ignored.
func Make[T Number](entry T, children ...Tree[T]) Tree[T] {
	ch := make([]Tree[T], 0, len(children))
	for _, c := range children {
		if !c.IsEmpty() {
			ch = append(ch, c)
		}
	}
	if len(ch) == 0 {
		ch = nil
	}
	return Tree[T]{node: &tnode[T]{entry: entry, children: ch}}
}

// Leaf constructs a node without children.
func Leaf[T Number](entry T) Tree[T] {
	return Tree[T]{node: &tnode[T]{entry: entry}}
}

// IsEmpty is true for the empty tree.
func (t Tree[T]) IsEmpty() bool {
	return t.node == nil
}

// IsLeaf is true for a non-empty tree without children.
func (t Tree[T]) IsLeaf() bool {
	return t.node != nil && len(t.node.children) == 0
}

// Entry returns the entry of the root node. Asking the empty tree for an
// entry is a caller error and panics.
func (t Tree[T]) Entry() T {
	assertThat(t.node != nil, "attempt to take the entry of an empty tree")
	return t.node.entry
}

// Children returns the child trees, left to right, in a fresh slice.
// The empty tree and leaves have none.
func (t Tree[T]) Children() []Tree[T] {
	if t.node == nil || len(t.node.children) == 0 {
		return nil
	}
	ch := make([]Tree[T], len(t.node.children))
	copy(ch, t.node.children)
	return ch
}

// Degree returns the number of children of the root node.
func (t Tree[T]) Degree() int {
	if t.node == nil {
		return 0
	}
	return len(t.node.children)
}

func (t Tree[T]) String() string {
	if t.node == nil {
		return "(Tree empty)"
	}
	return fmt.Sprintf("(Tree %v #ch=%d)", t.node.entry, len(t.node.children))
}
