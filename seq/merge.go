package seq

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/recur/result"
)

// ErrComparatorTie is returned by MergeStrict when the comparator orders
// two elements in neither direction.
var ErrComparatorTie = errors.New("seq: comparator reports a tie; strict total order required")

// Ordered matches the element types GreaterList can compare.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Merge merges two sequences, each already ordered under comp, into one
// ordered sequence holding all elements of both. comp(a, b) means
// "a strictly precedes b". When comp orders a pair in neither direction,
// the element of list1 is taken first. Use MergeStrict to treat such ties
// as a contract violation instead.
func Merge[T any](comp func(T, T) bool, list1, list2 Sequence[T]) Sequence[T] {
	r := Empty[T]()
	c1, c2 := list1.cell, list2.cell
	for c1 != nil && c2 != nil {
		if comp(c2.head, c1.head) {
			r = Cons(c2.head, r)
			c2 = c2.tail
		} else {
			r = Cons(c1.head, r)
			c1 = c1.tail
		}
	}
	rest := Sequence[T]{cell: c1}
	if c1 == nil {
		rest = Sequence[T]{cell: c2}
	}
	return r.Reverse().Append(rest)
}

// MergeStrict behaves like Merge but requires comp to be a strict total
// order over the merged elements: the first pair ordered in neither
// direction yields Err(ErrComparatorTie).
func MergeStrict[T any](comp func(T, T) bool, list1, list2 Sequence[T]) result.Result[Sequence[T]] {
	r := Empty[T]()
	c1, c2 := list1.cell, list2.cell
	for c1 != nil && c2 != nil {
		switch {
		case comp(c1.head, c2.head):
			r = Cons(c1.head, r)
			c1 = c1.tail
		case comp(c2.head, c1.head):
			r = Cons(c2.head, r)
			c2 = c2.tail
		default:
			tracer().Debugf("merge tie between %v and %v", c1.head, c2.head)
			return result.Err[Sequence[T]](ErrComparatorTie)
		}
	}
	rest := Sequence[T]{cell: c1}
	if c1 == nil {
		rest = Sequence[T]{cell: c2}
	}
	return result.Ok(r.Reverse().Append(rest))
}

// Split partitions a sequence into two by alternating elements: indices
// 0,2,4,… go into the first half, 1,3,5,… into the second. For odd length
// the extra element ends up in the first half.
func Split[T any](x Sequence[T]) (Sequence[T], Sequence[T]) {
	evens, odds := Empty[T](), Empty[T]()
	takeEven := true
	for cell := x.cell; cell != nil; cell = cell.tail {
		if takeEven {
			evens = Cons(cell.head, evens)
		} else {
			odds = Cons(cell.head, odds)
		}
		takeEven = !takeEven
	}
	return evens.Reverse(), odds.Reverse()
}

// Sort is a merge sort: it splits s into interleaved halves, sorts each
// and merges them with comp. Sequences of length 0 or 1 are returned
// unchanged. Equal elements keep a deterministic, though not necessarily
// original, relative order; see the tie rule of Merge.
func Sort[T any](comp func(T, T) bool, s Sequence[T]) Sequence[T] {
	if s.Len() <= 1 {
		return s
	}
	half1, half2 := Split(s)
	return Merge(comp, Sort(comp, half1), Sort(comp, half2))
}

// GreaterList is a lexicographic "strictly greater than" over sequences of
// ordered elements: the first unequal pair of elements decides; if y runs
// out first, x is greater; if x runs out first, or both end with all
// elements equal, it is not.
func GreaterList[T Ordered](x, y Sequence[T]) bool {
	cx, cy := x.cell, y.cell
	for cx != nil && cy != nil {
		if cx.head != cy.head {
			return cx.head > cy.head
		}
		cx, cy = cx.tail, cy.tail
	}
	return cx != nil && cy == nil
}

// SortLists sorts a sequence of sequences into decreasing lexicographic
// order, using GreaterList as the merge-sort comparator.
func SortLists[T Ordered](lsts Sequence[Sequence[T]]) Sequence[Sequence[T]] {
	return Sort(GreaterList[T], lsts)
}
