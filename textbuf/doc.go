/*
Package textbuf implements a mutable, terminated byte string on top of
smallvec.Vector.

A Text keeps its characters inline up to the static capacity of its vector,
minus one slot reserved for the terminator, and moves them to the heap above
that. The terminator is always the last stored element and is invisible to
Size, indexing and iteration. CString exposes the terminated raw data for
callers which need it.

Appending a sequence reserves storage once for the whole sequence, so a
single append may leave more spare capacity than appending the same bytes
one at a time.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textbuf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smallvec'.
func tracer() tracing.Trace {
	return tracing.Select("smallvec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
