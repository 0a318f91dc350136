/*
Package seq implements an immutable persistent sequence.

Sequences are singly-chained cons cells, decomposed with Head and Tail.
Every operation leaves its input untouched and shares the unchanged part of
the chain structurally, so taking the tail of a million-element sequence is
free and handing sequences to concurrent readers is safe.

On top of the cell type the package provides the classic higher-order
primitives (Map, Filter, Accumulate, Flatten) and an ordered merge with a
merge sort built on it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'recur.seq'.
func tracer() tracing.Trace {
	return tracing.Select("recur.seq")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("recur.seq: "+msg, msgargs...)
		panic(msg)
	}
}
