package textbuf

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/smallvec"
)

// Terminator is the sentinel byte stored after the last character of a text.
const Terminator byte = 0

// Text is a mutable byte string on top of a smallvec.Vector. The underlying
// vector always holds one extra element, the Terminator, after the last
// character. The terminator occupies a slot, and therefore counts towards the
// static capacity, but it is never part of Size, indexing or iteration.
//
// A zero Text behaves like the empty string; the terminator is installed with
// the first mutation. A Text must not be copied by value, use Clone.
type Text[A any, PA smallvec.Storage[byte, A]] struct {
	buf smallvec.Vector[byte, A, PA]
}

// Texts with predefined static capacities (terminator included).
type (
	String16 = Text[smallvec.Inline16[byte], *smallvec.Inline16[byte]]
	String32 = Text[smallvec.Inline32[byte], *smallvec.Inline32[byte]]
	String64 = Text[smallvec.Inline64[byte], *smallvec.Inline64[byte]]
)

// New creates an empty text.
func New[A any, PA smallvec.Storage[byte, A]]() *Text[A, PA] {
	t := &Text[A, PA]{}
	t.ensure()
	return t
}

// FromString creates a text holding the bytes of s.
func FromString[A any, PA smallvec.Storage[byte, A]](s string) *Text[A, PA] {
	t := New[A, PA]()
	t.AppendString(s)
	return t
}

// FromBytes creates a text holding a copy of b.
func FromBytes[A any, PA smallvec.Storage[byte, A]](b []byte) *Text[A, PA] {
	t := New[A, PA]()
	t.AppendBytes(b)
	return t
}

// ensure installs the terminator on a zero text.
func (t *Text[A, PA]) ensure() {
	if t.buf.Size() == 0 {
		t.buf.PushBack(Terminator)
	}
}

// logical returns the characters without the terminator.
func (t *Text[A, PA]) logical() []byte {
	return t.buf.Data()[:t.Size()]
}

// Clone returns an independent copy of t.
func (t *Text[A, PA]) Clone() *Text[A, PA] {
	c := &Text[A, PA]{}
	c.Assign(t)
	return c
}

// Assign replaces the contents of t with a copy of other's characters.
func (t *Text[A, PA]) Assign(other *Text[A, PA]) {
	if t == other {
		return
	}
	if other.buf.Size() == 0 {
		t.Clear()
		return
	}
	t.buf.Assign(&other.buf)
}

// Raw exposes the underlying vector, terminator included. It is meant for
// inspection; mutating it may break the terminator invariant.
func (t *Text[A, PA]) Raw() *smallvec.Vector[byte, A, PA] {
	return &t.buf
}

// --- Introspection ---------------------------------------------------------

// Size returns the number of characters, excluding the terminator.
func (t *Text[A, PA]) Size() int {
	return max(t.buf.Size()-1, 0)
}

// Empty reports whether t holds no characters.
func (t *Text[A, PA]) Empty() bool {
	return t.Size() == 0
}

// Capacity returns the capacity of the underlying vector, which includes the
// slot of the terminator.
func (t *Text[A, PA]) Capacity() int {
	return t.buf.Capacity()
}

// IsInline reports whether the characters live in inline storage.
func (t *Text[A, PA]) IsInline() bool {
	return t.buf.IsInline()
}

// --- Access ----------------------------------------------------------------

// At returns the character at index i, or ErrIndexOutOfBounds for
// i >= Size(). The terminator is never accessible.
func (t *Text[A, PA]) At(i int) (byte, error) {
	if i < 0 || i >= t.Size() {
		return 0, fmt.Errorf("%w: index %d, size %d", smallvec.ErrIndexOutOfBounds, i, t.Size())
	}
	return t.buf.Get(i), nil
}

// Get returns the character at index i without an error check. Indexing at
// Size() reads the terminator, indexing beyond it panics.
func (t *Text[A, PA]) Get(i int) byte {
	return t.buf.Get(i)
}

// Set overwrites the character at index i.
func (t *Text[A, PA]) Set(i int, c byte) error {
	if i < 0 || i >= t.Size() {
		return fmt.Errorf("%w: index %d, size %d", smallvec.ErrIndexOutOfBounds, i, t.Size())
	}
	return t.buf.Set(i, c)
}

// String returns the characters as a Go string.
func (t *Text[A, PA]) String() string {
	return string(t.logical())
}

// Bytes returns a copy of the characters.
func (t *Text[A, PA]) Bytes() []byte {
	return bytes.Clone(t.logical())
}

// CString returns the raw underlying data, terminated by Terminator. The
// slice is invalidated like smallvec.Vector.Data.
func (t *Text[A, PA]) CString() []byte {
	t.ensure()
	return t.buf.Data()
}

// --- Mutation --------------------------------------------------------------

// PushBack appends character c. The old terminator slot receives c and the
// terminator moves one slot to the right.
func (t *Text[A, PA]) PushBack(c byte) {
	t.ensure()
	t.buf.PushBack(Terminator)
	*t.buf.Ref(t.buf.Size() - 2) = c
}

// PopBack removes the last character and returns it. ok is false for an empty
// text. Storage shrinks back to inline like for smallvec.Vector.PopBack.
func (t *Text[A, PA]) PopBack() (c byte, ok bool) {
	if t.Size() == 0 {
		return 0, false
	}
	c = t.buf.Get(t.Size() - 1)
	t.buf.PopBack()
	*t.buf.Ref(t.buf.Size() - 1) = Terminator
	return c, true
}

// Clear resets t to the empty text, releasing a heap buffer.
func (t *Text[A, PA]) Clear() {
	t.buf.Clear()
	t.buf.PushBack(Terminator)
}

// Append appends character c. It is the same as PushBack.
func (t *Text[A, PA]) Append(c byte) *Text[A, PA] {
	t.PushBack(c)
	return t
}

// AppendBytes appends the bytes of b. Storage is reserved once for all of them
// before they are written in front of the terminator.
func (t *Text[A, PA]) AppendBytes(b []byte) *Text[A, PA] {
	t.ensure()
	_, err := t.buf.InsertSlice(t.Size(), b...)
	assert(err == nil, "AppendBytes: cannot insert before terminator")
	return t
}

// AppendString appends the bytes of s.
func (t *Text[A, PA]) AppendString(s string) *Text[A, PA] {
	return t.AppendBytes([]byte(s))
}

// AppendText appends the characters of other, without its terminator.
func (t *Text[A, PA]) AppendText(other *Text[A, PA]) *Text[A, PA] {
	return t.AppendBytes(other.logical())
}

// Insert inserts bytes at character position pos, 0 <= pos <= Size().
func (t *Text[A, PA]) Insert(pos int, b ...byte) error {
	t.ensure()
	if pos < 0 || pos > t.Size() {
		return fmt.Errorf("%w: insert position %d, size %d", smallvec.ErrInvalidRange, pos, t.Size())
	}
	_, err := t.buf.InsertSlice(pos, b...)
	return err
}

// Erase removes the characters in [first, last). The terminator cannot be
// erased.
func (t *Text[A, PA]) Erase(first, last int) error {
	t.ensure()
	if first < 0 || first > last || last > t.Size() {
		return fmt.Errorf("%w: erase range [%d,%d), size %d", smallvec.ErrInvalidRange, first, last, t.Size())
	}
	_, err := t.buf.EraseRange(first, last)
	return err
}

// --- Concatenation ---------------------------------------------------------

// Plus returns a new text holding t followed by c.
func (t *Text[A, PA]) Plus(c byte) *Text[A, PA] {
	return t.Clone().Append(c)
}

// PlusString returns a new text holding t followed by s.
func (t *Text[A, PA]) PlusString(s string) *Text[A, PA] {
	return t.Clone().AppendString(s)
}

// PlusText returns a new text holding t followed by the characters of other.
func (t *Text[A, PA]) PlusText(other *Text[A, PA]) *Text[A, PA] {
	return t.Clone().AppendText(other)
}

// Concat returns a new text holding the characters of all texts, in order.
func Concat[A any, PA smallvec.Storage[byte, A]](texts ...*Text[A, PA]) *Text[A, PA] {
	r := New[A, PA]()
	n := 0
	for _, t := range texts {
		n += t.Size()
	}
	b := make([]byte, 0, n)
	for _, t := range texts {
		b = append(b, t.logical()...)
	}
	return r.AppendBytes(b)
}

// --- Comparison ------------------------------------------------------------

// Equal reports whether a and b hold the same characters. Capacities do not
// take part in the comparison.
func Equal[A, B any, PA smallvec.Storage[byte, A], PB smallvec.Storage[byte, B]](a *Text[A, PA], b *Text[B, PB]) bool {
	return bytes.Equal(a.logical(), b.logical())
}

// Check validates the storage invariants of the underlying vector and the
// terminator invariant.
func (t *Text[A, PA]) Check() error {
	if err := t.buf.Check(); err != nil {
		return err
	}
	if t.buf.Size() == 0 {
		return nil // zero text
	}
	if t.buf.Get(t.buf.Size()-1) != Terminator {
		return fmt.Errorf("%w: text not terminated", smallvec.ErrInvariant)
	}
	return nil
}
