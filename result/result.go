/*
Package result implements a type for computations which may fail.

A Result is either Ok with a value or Err with an error. It is the return
type of operations with a contract the caller may violate, such as
seq.MergeStrict, which insists on a tie-free comparator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"github.com/npillmayer/recur/maybe"
)

// Result wraps the outcome of a computation which may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	ToMaybe() maybe.Maybe[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err must be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault unwraps a successful value, falling back to def on failure.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// ToMaybe forgets the error, keeping only presence or absence of a value.
func (r result[T]) ToMaybe() maybe.Maybe[T] {
	if r.err == nil {
		return maybe.Just(r.value)
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher discriminates the two cases of a Result within a switch statement.
// A matching case binds the value or the error through the pointer argument.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
