/*
Package partition enumerates bounded integer partitions.

A partition of a total is a sequence of positive integers summing to that
total. All enumerates every partition whose piece count and piece size stay
under given bounds, by a binary-choice recursion: at each step either spend
one piece at the current ceiling, or lower the ceiling by one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package partition

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/recur/seq"
)

// tracer traces with key 'recur.partition'.
func tracer() tracing.Trace {
	return tracing.Select("recur.partition")
}

// All returns every sequence of positive integers that sums exactly to
// total, holds at most maxPieces elements, each at most maxValue. Pieces
// within a partition appear in decreasing order, largest first; the same
// value may repeat. Partitions that spend a piece at the current ceiling
// precede those using only smaller pieces.
//
// Degenerate inputs (negative total, zero budget, zero ceiling) yield the
// empty enumeration, not an error; a total of zero has exactly one
// partition, the empty one.
func All(total, maxPieces, maxValue int) seq.Sequence[seq.Sequence[int]] {
	all := enumerate(total, maxPieces, maxValue)
	tracer().Debugf("found %d partitions of %d (≤%d pieces ≤%d)",
		all.Len(), total, maxPieces, maxValue)
	return all
}

func enumerate(total, pieces, ceiling int) seq.Sequence[seq.Sequence[int]] {
	none := seq.Empty[seq.Sequence[int]]()
	switch {
	case total < 0:
		return none
	case total == 0: // the empty partition, onto which callers cons their pieces
		return seq.New(seq.Empty[int]())
	case pieces == 0 || ceiling == 0:
		return none
	}
	// spend one piece at the ceiling, or lower the ceiling
	spend := seq.Map(func(p seq.Sequence[int]) seq.Sequence[int] {
		return seq.Cons(ceiling, p)
	}, enumerate(total-ceiling, pieces-1, ceiling))
	lower := enumerate(total, pieces, ceiling-1)
	return spend.Append(lower)
}
