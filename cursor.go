package smallvec

import "fmt"

// Cursor is a position in a vector, moving either forward or in reverse.
//
// A forward cursor refers to the element at Index(), with End() at index
// Size(). A reverse cursor refers to the element at Index() as well, but moves
// towards lower indices; RBegin() is at Size()-1 and REnd() at -1.
//
// A cursor is bound to the modification epoch of its vector at creation time.
// Once the vector reallocates, shifts elements or switches storage mode, the
// cursor is stale: Valid reports false and Value/Set return ErrStaleCursor.
// Appending within capacity and removing the last element without shrinking
// leave cursors intact.
type Cursor[T any, A any, PA Storage[T, A]] struct {
	vec     *Vector[T, A, PA]
	pos     int
	epoch   uint64
	reverse bool
}

// cursor creates a cursor at pos. For a nil vector the cursor is detached:
// it is never valid and refuses access, like the zero Cursor.
func (v *Vector[T, A, PA]) cursor(pos int, reverse bool) Cursor[T, A, PA] {
	if v == nil {
		return Cursor[T, A, PA]{pos: pos, reverse: reverse}
	}
	return Cursor[T, A, PA]{vec: v, pos: pos, epoch: v.epoch, reverse: reverse}
}

// Begin returns a forward cursor to the first element.
func (v *Vector[T, A, PA]) Begin() Cursor[T, A, PA] {
	return v.cursor(0, false)
}

// End returns a forward cursor just past the last element.
func (v *Vector[T, A, PA]) End() Cursor[T, A, PA] {
	return v.cursor(v.Size(), false)
}

// RBegin returns a reverse cursor to the last element.
func (v *Vector[T, A, PA]) RBegin() Cursor[T, A, PA] {
	return v.cursor(v.Size()-1, true)
}

// REnd returns a reverse cursor just before the first element.
func (v *Vector[T, A, PA]) REnd() Cursor[T, A, PA] {
	return v.cursor(-1, true)
}

// CursorAt returns a forward cursor at index i, with 0 <= i <= Size().
func (v *Vector[T, A, PA]) CursorAt(i int) (Cursor[T, A, PA], error) {
	if i < 0 || i > v.Size() {
		return v.End(), fmt.Errorf("%w: cursor position %d, size %d", ErrIndexOutOfBounds, i, v.Size())
	}
	return v.cursor(i, false), nil
}

// RCursorAt returns a reverse cursor at index i, with -1 <= i < Size().
func (v *Vector[T, A, PA]) RCursorAt(i int) (Cursor[T, A, PA], error) {
	if i < -1 || i >= v.Size() {
		return v.REnd(), fmt.Errorf("%w: cursor position %d, size %d", ErrIndexOutOfBounds, i, v.Size())
	}
	return v.cursor(i, true), nil
}

// Index returns the element index the cursor refers to.
func (c Cursor[T, A, PA]) Index() int {
	return c.pos
}

// IsReverse reports whether c moves towards lower indices.
func (c Cursor[T, A, PA]) IsReverse() bool {
	return c.reverse
}

// Valid reports whether c belongs to a vector, is not stale, and is positioned
// on an element or on one of the two end positions.
func (c Cursor[T, A, PA]) Valid() bool {
	if c.vec == nil || c.epoch != c.vec.epoch {
		return false
	}
	return c.pos >= -1 && c.pos <= c.vec.size
}

// Value returns the element c refers to.
func (c Cursor[T, A, PA]) Value() (T, error) {
	var zero T
	if err := c.check(); err != nil {
		return zero, err
	}
	return c.vec.slots()[c.pos], nil
}

// Set overwrites the element c refers to.
func (c Cursor[T, A, PA]) Set(value T) error {
	if err := c.check(); err != nil {
		return err
	}
	c.vec.slots()[c.pos] = value
	return nil
}

func (c Cursor[T, A, PA]) check() error {
	if c.vec == nil {
		return fmt.Errorf("%w: cursor not initialized", ErrStaleCursor)
	}
	if c.epoch != c.vec.epoch {
		return fmt.Errorf("%w: vector changed since cursor was created", ErrStaleCursor)
	}
	if c.pos < 0 || c.pos >= c.vec.size {
		return fmt.Errorf("%w: cursor at %d, size %d", ErrIndexOutOfBounds, c.pos, c.vec.size)
	}
	return nil
}

// Next returns the cursor moved by one element in its direction.
func (c Cursor[T, A, PA]) Next() Cursor[T, A, PA] {
	if c.reverse {
		c.pos--
	} else {
		c.pos++
	}
	return c
}

// Prev returns the cursor moved by one element against its direction.
func (c Cursor[T, A, PA]) Prev() Cursor[T, A, PA] {
	if c.reverse {
		c.pos++
	} else {
		c.pos--
	}
	return c
}

// Equal reports whether c and d are positioned at the same index of the same
// vector and move in the same direction.
func (c Cursor[T, A, PA]) Equal(d Cursor[T, A, PA]) bool {
	return c.vec == d.vec && c.pos == d.pos && c.reverse == d.reverse
}
