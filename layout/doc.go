/*
Package layout prints the slot layout of small-buffer vectors to a console,
for debugging and teaching purposes.

Every slot of the current buffer is printed as a fixed-width cell. Occupied
slots are coloured according to the storage mode of the vector (inline or
heap); free slots are printed as dots. Output is wrapped to the width of the
terminal, if stdout is one.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smallvec'.
func tracer() tracing.Trace {
	return tracing.Select("smallvec")
}
