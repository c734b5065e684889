package smallvec

import "fmt"

// Check validates the storage invariants of v.
//
// It is meant for tests and debugging; operations of this package keep the
// invariants without calling Check.
func (v *Vector[T, A, PA]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvariant)
	}
	static := v.StaticCapacity()
	if v.size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvariant, v.size)
	}
	if v.size > v.Capacity() {
		return fmt.Errorf("%w: size exceeds capacity (%d > %d)", ErrInvariant, v.size, v.Capacity())
	}
	if v.heap == nil {
		return nil
	}
	if v.size <= static {
		err := fmt.Errorf("%w: heap storage for size %d within static capacity %d", ErrInvariant, v.size, static)
		tracer().Errorf("%v", err)
		return err
	}
	if len(v.heap) <= static {
		err := fmt.Errorf("%w: heap capacity %d not above static capacity %d", ErrInvariant, len(v.heap), static)
		tracer().Errorf("%v", err)
		return err
	}
	inline := PA(&v.inline).Slots()
	if len(inline) > 0 && &v.heap[0] == &inline[0] {
		return fmt.Errorf("%w: heap buffer aliases inline storage", ErrInvariant)
	}
	return nil
}
