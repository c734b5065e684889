package textbuf

import (
	"fmt"
	"iter"

	"github.com/npillmayer/smallvec"
)

// Cursor is a position in a text. It wraps a cursor of the underlying vector,
// but its range ends at Size(): the terminator slot is the End position and
// can be neither read nor written through a cursor.
//
// Cursors go stale under the same conditions as smallvec.Cursor.
type Cursor[A any, PA smallvec.Storage[byte, A]] struct {
	text *Text[A, PA]
	at   smallvec.Cursor[byte, A, PA]
}

// Index returns the character index the cursor refers to.
func (c Cursor[A, PA]) Index() int {
	return c.at.Index()
}

// IsReverse reports whether c moves towards lower indices.
func (c Cursor[A, PA]) IsReverse() bool {
	return c.at.IsReverse()
}

// Valid reports whether c is not stale and is positioned on a character or
// on one of the two end positions of its text.
func (c Cursor[A, PA]) Valid() bool {
	if c.text == nil || !c.at.Valid() {
		return false
	}
	return c.at.Index() >= -1 && c.at.Index() <= c.text.Size()
}

// Value returns the character c refers to.
func (c Cursor[A, PA]) Value() (byte, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.at.Value()
}

// Set overwrites the character c refers to.
func (c Cursor[A, PA]) Set(ch byte) error {
	if err := c.check(); err != nil {
		return err
	}
	return c.at.Set(ch)
}

func (c Cursor[A, PA]) check() error {
	if c.text == nil {
		return fmt.Errorf("%w: cursor not initialized", smallvec.ErrStaleCursor)
	}
	if _, err := c.at.Value(); err != nil {
		return err
	}
	if i := c.at.Index(); i < 0 || i >= c.text.Size() {
		return fmt.Errorf("%w: cursor at %d, size %d", smallvec.ErrIndexOutOfBounds, i, c.text.Size())
	}
	return nil
}

// Next returns the cursor moved by one character in its direction.
func (c Cursor[A, PA]) Next() Cursor[A, PA] {
	c.at = c.at.Next()
	return c
}

// Prev returns the cursor moved by one character against its direction.
func (c Cursor[A, PA]) Prev() Cursor[A, PA] {
	c.at = c.at.Prev()
	return c
}

// Equal reports whether c and d are positioned at the same index of the same
// text and move in the same direction.
func (c Cursor[A, PA]) Equal(d Cursor[A, PA]) bool {
	return c.text == d.text && c.at.Equal(d.at)
}

// --- Traversal -------------------------------------------------------------

func (t *Text[A, PA]) cursor(at smallvec.Cursor[byte, A, PA]) Cursor[A, PA] {
	return Cursor[A, PA]{text: t, at: at}
}

// Begin returns a forward cursor to the first character.
func (t *Text[A, PA]) Begin() Cursor[A, PA] {
	return t.cursor(t.buf.Begin())
}

// End returns a forward cursor just past the last character, i.e. at the
// terminator.
func (t *Text[A, PA]) End() Cursor[A, PA] {
	at, err := t.buf.CursorAt(t.Size())
	assert(err == nil, "End: cannot position cursor")
	return t.cursor(at)
}

// RBegin returns a reverse cursor to the last character.
func (t *Text[A, PA]) RBegin() Cursor[A, PA] {
	at, err := t.buf.RCursorAt(t.Size() - 1)
	assert(err == nil, "RBegin: cannot position cursor")
	return t.cursor(at)
}

// REnd returns a reverse cursor just before the first character.
func (t *Text[A, PA]) REnd() Cursor[A, PA] {
	return t.cursor(t.buf.REnd())
}

// Walk yields position and character from `from` up to, but not including,
// `to`. Both cursors must belong to t and move in the same direction. Walking
// stops at the ends of the text, even if `to` lies beyond them, and once the
// cursors become stale.
func (t *Text[A, PA]) Walk(from, to Cursor[A, PA]) iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		if from.text != t || to.text != t || from.IsReverse() != to.IsReverse() {
			return
		}
		for c := from; c.Valid() && c.Index() != to.Index(); c = c.Next() {
			x, err := c.Value()
			if err != nil {
				return
			}
			if !yield(c.Index(), x) {
				return
			}
		}
	}
}

// All yields position and character in forward order.
func (t *Text[A, PA]) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		t.Walk(t.Begin(), t.End())(yield)
	}
}

// Backward yields position and character in reverse order.
func (t *Text[A, PA]) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		t.Walk(t.RBegin(), t.REnd())(yield)
	}
}
