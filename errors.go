package smallvec

import "errors"

var (
	// ErrIndexOutOfBounds signals an index outside of [0, Size()).
	ErrIndexOutOfBounds = errors.New("smallvec: index out of bounds")
	// ErrInvalidRange signals an insert position beyond Size() or an erase range
	// with first after last or last beyond Size().
	ErrInvalidRange = errors.New("smallvec: invalid range")
	// ErrStaleCursor signals use of a cursor after its vector relocated or shifted
	// elements.
	ErrStaleCursor = errors.New("smallvec: stale cursor")
	// ErrInvariant signals a violated storage invariant (see Check).
	ErrInvariant = errors.New("smallvec: storage invariant violated")
)
