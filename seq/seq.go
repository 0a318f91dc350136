package seq

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/recur/maybe"
)

// Sequence is an immutable singly-chained sequence of elements of type T.
// The zero value is the empty sequence and ready to use:
//
//     var s seq.Sequence[int]          // ()
//     s = seq.Cons(1, s)               // (1)
//
// Tails are shared between a sequence and everything derived from it; no
// operation ever modifies a cell in place.
type Sequence[T any] struct {
	cell *cons[T]
}

// cons is a single cell of the chain. count caches the chain length,
// making Len O(1).
type cons[T any] struct {
	head  T
	tail  *cons[T]
	count int
}

// Empty returns the empty sequence for element type T.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Cons chains a new head element in front of a sequence.
func Cons[T any](head T, tail Sequence[T]) Sequence[T] {
	return Sequence[T]{cell: &cons[T]{head: head, tail: tail.cell, count: tail.Len() + 1}}
}

// New builds a sequence holding vals in the given order.
func New[T any](vals ...T) Sequence[T] {
	s := Empty[T]()
	for i := len(vals) - 1; i >= 0; i-- {
		s = Cons(vals[i], s)
	}
	return s
}

// --- Decomposition ---------------------------------------------------------

// IsEmpty is true for the empty sequence.
func (s Sequence[T]) IsEmpty() bool {
	return s.cell == nil
}

// Len returns the number of elements.
func (s Sequence[T]) Len() int {
	if s.cell == nil {
		return 0
	}
	return s.cell.count
}

// Head returns the first element. Decomposing the empty sequence is a
// caller error and panics; use First for a total variant.
func (s Sequence[T]) Head() T {
	assertThat(s.cell != nil, "attempt to take the head of an empty sequence")
	return s.cell.head
}

// Tail returns the sequence after the first element. The tail of the empty
// sequence is the empty sequence.
func (s Sequence[T]) Tail() Sequence[T] {
	if s.cell == nil {
		return s
	}
	return Sequence[T]{cell: s.cell.tail}
}

// First returns the first element, or Nothing for the empty sequence.
func (s Sequence[T]) First() maybe.Maybe[T] {
	if s.cell == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.cell.head)
}

// Last returns the final element, or Nothing for the empty sequence.
func (s Sequence[T]) Last() maybe.Maybe[T] {
	if s.cell == nil {
		return maybe.Nothing[T]()
	}
	cell := s.cell
	for cell.tail != nil {
		cell = cell.tail
	}
	return maybe.Just(cell.head)
}

// Slice copies the elements into a fresh Go slice.
func (s Sequence[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for cell := s.cell; cell != nil; cell = cell.tail {
		out = append(out, cell.head)
	}
	return out
}

func (s Sequence[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for cell := s.cell; cell != nil; cell = cell.tail {
		if cell != s.cell {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", cell.head))
	}
	b.WriteByte(')')
	return b.String()
}

// --- Building --------------------------------------------------------------

// Append returns the concatenation of s and other. The cells of s are
// copied; other is shared as the tail of the result.
func (s Sequence[T]) Append(other Sequence[T]) Sequence[T] {
	if s.cell == nil {
		return other
	}
	if other.cell == nil {
		return s
	}
	return s.Reverse().foldInto(other)
}

// Reverse returns the sequence with elements in opposite order.
func (s Sequence[T]) Reverse() Sequence[T] {
	r := Empty[T]()
	for cell := s.cell; cell != nil; cell = cell.tail {
		r = Cons(cell.head, r)
	}
	return r
}

// foldInto conses the elements of s, in order, onto the front of acc,
// i.e. s.Reverse().foldInto(acc) == s ++ acc.
func (s Sequence[T]) foldInto(acc Sequence[T]) Sequence[T] {
	for cell := s.cell; cell != nil; cell = cell.tail {
		acc = Cons(cell.head, acc)
	}
	return acc
}

// Equal compares two sequences element-wise.
func Equal[T comparable](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.cell, b.cell
	for ca != nil {
		if ca.head != cb.head {
			return false
		}
		ca, cb = ca.tail, cb.tail
	}
	return true
}
