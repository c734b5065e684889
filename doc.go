/*
Package smallvec implements a growable sequence container which keeps its
elements inline, i.e. inside the container value itself, for as long as the
element count stays within a static capacity. Once an operation would exceed
that capacity, the elements move to a separately allocated heap buffer owned
exclusively by the vector. When the element count drops back to the static
capacity or below, the elements move back inline and the heap buffer is
released.

Static capacity

The static capacity is part of the vector's type. It is the length of the
inline array type A, which is embedded into the vector struct:

	var v smallvec.Vec16[int]   // 16 inline slots, ready to use

Clients needing a different inline size define their own array type:

	type slots24 [24]float64
	func (a *slots24) Slots() []float64 { return a[:] }

	var v smallvec.Vector[float64, slots24, *slots24]

Growth

While heap-backed, capacity is recomputed from the required element count on
every growth step, with ratio 1.5 (see CapacityFor). Capacity never shrinks
while the vector stays above its static capacity, but snaps back to the static
capacity as soon as a removal brings the size down to it. Clear always returns
to inline storage.

Cursors

Cursors are index based and bound to a modification epoch of their vector.
Operations which relocate or shift elements, or switch storage mode, advance the
epoch; cursors created earlier become stale and refuse access with
ErrStaleCursor instead of silently reading moved data.

Vectors are not safe for concurrent use. A heap-backed vector must not be copied
by value, as both copies would share the heap buffer; use Clone or Assign.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package smallvec

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
