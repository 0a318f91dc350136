package seq

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Map produces the sequence of proc applied to each element of items, same
// length and order. proc is expected to be free of side effects; if it
// panics, the panic propagates to the caller.
func Map[T, S any](proc func(T) S, items Sequence[T]) Sequence[S] {
	r := Empty[S]()
	for cell := items.cell; cell != nil; cell = cell.tail {
		r = Cons(proc(cell.head), r)
	}
	return r.Reverse()
}

// Filter produces the subsequence of elements for which predicate holds,
// preserving their relative order.
func Filter[T any](predicate func(T) bool, s Sequence[T]) Sequence[T] {
	r := Empty[T]()
	for cell := s.cell; cell != nil; cell = cell.tail {
		if predicate(cell.head) {
			r = Cons(cell.head, r)
		}
	}
	return r.Reverse()
}

// Accumulate folds a sequence from the right:
//
//     Accumulate(op, init, (a b c)) == op(a, op(b, op(c, init)))
//
// The empty sequence folds to initial. op receives the element first and
// the accumulated value second.
func Accumulate[T, A any](op func(T, A) A, initial A, s Sequence[T]) A {
	acc := initial
	for cell := s.Reverse().cell; cell != nil; cell = cell.tail {
		acc = op(cell.head, acc)
	}
	return acc
}

// Concat concatenates a sequence of sequences into one, preserving the
// order of the outer sequence and of each inner one.
func Concat[T any](ss Sequence[Sequence[T]]) Sequence[T] {
	return Accumulate(func(s, acc Sequence[T]) Sequence[T] {
		return s.Append(acc)
	}, Empty[T](), ss)
}

// Flatten recursively concatenates a sequence whose elements may themselves
// be sequences (to arbitrary depth) into one flat sequence of atoms,
// left-to-right. Elements that are not of type Sequence[any] count as atoms
// and are kept as-is.
func Flatten(l Sequence[any]) Sequence[any] {
	r := Empty[any]()
	for cell := l.cell; cell != nil; cell = cell.tail {
		switch nested := cell.head.(type) {
		case Sequence[any]:
			r = Flatten(nested).foldInto(r)
		default:
			r = Cons(cell.head, r)
		}
	}
	tracer().Debugf("flattened %d elements into %d atoms", l.Len(), r.Len())
	return r.Reverse()
}
