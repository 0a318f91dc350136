/*
Package recur collects recursive algorithms over immutable sequences and
trees, in the spirit of the classic structure-and-interpretation exercises:
generic list primitives (sub-package seq), exhaustive enumeration of bounded
integer partitions (sub-package partition), and path sums over multi-way
trees (sub-package tree).

The root package holds a handful of small function combinators.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package recur

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
