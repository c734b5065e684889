package smallvec

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"
)

// Vector is a sequence of elements of type T which stores up to a static
// capacity of elements inline, in an array of type A embedded into the vector,
// and switches to a heap buffer above that.
//
// A vector created by
//
//	Vector[T, A, PA]{}
//
// is a valid object and behaves like an empty sequence. Exactly one buffer is
// authoritative at any time: the inline array while heap is nil, otherwise the
// heap buffer.
//
//	Operation        |  Cost
//	-----------------+-------------------------------
//	PushBack         |  amortized O(1)
//	PopBack          |  O(1), O(static) on snap back
//	Insert / Erase   |  O(n)
//	Clear            |  O(1) plus clearing
//	At / Get         |  O(1)
type Vector[T any, A any, PA Storage[T, A]] struct {
	inline A
	heap   []T    // buffer of record if non-nil; len(heap) is the capacity
	size   int    // number of logically present elements
	epoch  uint64 // advanced whenever elements move; guards cursors
}

// New creates an empty vector. It is equivalent to taking the address of a
// zero vector.
func New[T any, A any, PA Storage[T, A]]() *Vector[T, A, PA] {
	return &Vector[T, A, PA]{}
}

// Repeat creates a vector holding n copies of value.
func Repeat[T any, A any, PA Storage[T, A]](n int, value T) *Vector[T, A, PA] {
	assert(n >= 0, "Repeat called with negative count")
	v := &Vector[T, A, PA]{}
	v.resizeUp(n)
	s := v.slots()
	for i := 0; i < n; i++ {
		s[i] = value
	}
	v.size = n
	return v
}

// FromSlice creates a vector holding a copy of items. Storage is reserved once.
func FromSlice[T any, A any, PA Storage[T, A]](items []T) *Vector[T, A, PA] {
	v := &Vector[T, A, PA]{}
	v.Append(items...)
	return v
}

// FromSeq creates a vector from an input sequence, pushing one element at a
// time and growing as needed.
func FromSeq[T any, A any, PA Storage[T, A]](seq iter.Seq[T]) *Vector[T, A, PA] {
	v := &Vector[T, A, PA]{}
	if seq == nil {
		return v
	}
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

// Clone returns an independent copy of v. The copy's storage mode is derived
// from its size: it is inline if the elements fit, otherwise it gets a heap
// buffer with capacity CapacityFor(static, size).
func (v *Vector[T, A, PA]) Clone() *Vector[T, A, PA] {
	c := &Vector[T, A, PA]{}
	c.Assign(v)
	return c
}

// Assign replaces the contents of v with a copy of the elements of other. As
// with Clone, the storage mode of v afterwards depends on other's size only.
// v never shares a heap buffer with other.
func (v *Vector[T, A, PA]) Assign(other *Vector[T, A, PA]) {
	if v == other {
		return
	}
	src := other.Data()
	inline := PA(&v.inline).Slots()
	clear(inline)
	v.heap = nil
	if len(src) > len(inline) {
		v.heap = make([]T, CapacityFor(len(inline), len(src)))
	}
	copy(v.slots(), src)
	v.size = len(src)
	v.epoch++
}

// --- Introspection ---------------------------------------------------------

// Size returns the number of elements.
func (v *Vector[T, A, PA]) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Capacity returns the number of usable slots of the current buffer.
func (v *Vector[T, A, PA]) Capacity() int {
	if v == nil {
		return 0
	}
	if v.heap != nil {
		return len(v.heap)
	}
	return v.StaticCapacity()
}

// StaticCapacity returns the number of inline slots.
func (v *Vector[T, A, PA]) StaticCapacity() int {
	if v == nil {
		var a A
		return len(PA(&a).Slots())
	}
	return len(PA(&v.inline).Slots())
}

// Empty reports whether v holds no elements.
func (v *Vector[T, A, PA]) Empty() bool {
	return v.Size() == 0
}

// IsInline reports whether the elements live in the inline array.
func (v *Vector[T, A, PA]) IsInline() bool {
	return v == nil || v.heap == nil
}

// slots returns the complete buffer of record.
func (v *Vector[T, A, PA]) slots() []T {
	if v.heap != nil {
		return v.heap
	}
	return PA(&v.inline).Slots()
}

// --- Access ----------------------------------------------------------------

// Data returns the elements as a slice over the current buffer. Writes through
// the slice are writes to the vector. The slice is invalidated by any operation
// which reallocates or switches storage mode.
func (v *Vector[T, A, PA]) Data() []T {
	if v == nil {
		return nil
	}
	return v.slots()[:v.size]
}

// At returns the element at index i, or ErrIndexOutOfBounds if i >= Size().
func (v *Vector[T, A, PA]) At(i int) (T, error) {
	if i < 0 || i >= v.Size() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.Size())
	}
	return v.slots()[i], nil
}

// Set overwrites the element at index i, or returns ErrIndexOutOfBounds.
func (v *Vector[T, A, PA]) Set(i int, value T) error {
	if i < 0 || i >= v.Size() {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.Size())
	}
	v.slots()[i] = value
	return nil
}

// Get returns the element at index i without an error check. Indexing outside
// of [0, Size()) is a programming error and panics.
func (v *Vector[T, A, PA]) Get(i int) T {
	return v.Data()[i]
}

// Ref returns a pointer to the element at index i without an error check. The
// pointer is invalidated like a slice returned by Data. Indexing outside of
// [0, Size()) panics.
func (v *Vector[T, A, PA]) Ref(i int) *T {
	return &v.Data()[i]
}

// --- Mutation --------------------------------------------------------------

// PushBack appends value at the end.
func (v *Vector[T, A, PA]) PushBack(value T) {
	v.resizeUp(1)
	v.slots()[v.size] = value
	v.size++
}

// Append appends items at the end, reserving storage once for all of them.
func (v *Vector[T, A, PA]) Append(items ...T) {
	_, err := v.InsertSlice(v.size, items...)
	assert(err == nil, "Append: cannot insert at end")
}

// PopBack removes the last element and returns it. ok is false if v is empty,
// in which case nothing happens.
func (v *Vector[T, A, PA]) PopBack() (value T, ok bool) {
	if v.Size() == 0 {
		return value, false
	}
	s := v.slots()
	value = s[v.size-1]
	var zero T
	s[v.size-1] = zero
	v.resizeDown(v.size - 1)
	v.size--
	return value, true
}

// Insert inserts value at position pos, shifting the elements at pos and after
// one slot to the right. pos may be Size(), which appends. It returns a cursor
// to the inserted element.
func (v *Vector[T, A, PA]) Insert(pos int, value T) (Cursor[T, A, PA], error) {
	if pos < 0 || pos > v.size {
		return v.End(), fmt.Errorf("%w: insert position %d, size %d", ErrInvalidRange, pos, v.size)
	}
	v.resizeUp(1)
	s := v.slots()
	copy(s[pos+1:v.size+1], s[pos:v.size])
	s[pos] = value
	v.size++
	v.epoch++
	return v.cursor(pos, false), nil
}

// InsertSlice inserts items at position pos in a single reallocation and shift
// pass. The result equals inserting the items one by one at increasing
// positions. items may be a slice over v's own data. It returns a cursor to the
// first inserted element.
func (v *Vector[T, A, PA]) InsertSlice(pos int, items ...T) (Cursor[T, A, PA], error) {
	if pos < 0 || pos > v.size {
		return v.End(), fmt.Errorf("%w: insert position %d, size %d", ErrInvalidRange, pos, v.size)
	}
	count := len(items)
	if count == 0 {
		return v.cursor(pos, false), nil
	}
	if sharesStorage(v.slots(), items) {
		items = slices.Clone(items)
	}
	v.resizeUp(count)
	s := v.slots()
	copy(s[pos+count:v.size+count], s[pos:v.size])
	copy(s[pos:pos+count], items)
	v.size += count
	v.epoch++
	return v.cursor(pos, false), nil
}

// InsertSeq collects seq and inserts its elements at position pos, like
// InsertSlice.
func (v *Vector[T, A, PA]) InsertSeq(pos int, seq iter.Seq[T]) (Cursor[T, A, PA], error) {
	if pos < 0 || pos > v.size {
		return v.End(), fmt.Errorf("%w: insert position %d, size %d", ErrInvalidRange, pos, v.size)
	}
	if seq == nil {
		return v.cursor(pos, false), nil
	}
	return v.InsertSlice(pos, slices.Collect(seq)...)
}

// Erase removes the element at pos, shifting subsequent elements one slot to
// the left. It returns a cursor to the element now at pos, which is End() if
// pos was the last element. On an empty vector, or for pos >= Size(), nothing
// is removed and ErrIndexOutOfBounds is returned.
func (v *Vector[T, A, PA]) Erase(pos int) (Cursor[T, A, PA], error) {
	if pos < 0 || pos >= v.Size() {
		return v.End(), fmt.Errorf("%w: erase position %d, size %d", ErrIndexOutOfBounds, pos, v.Size())
	}
	s := v.slots()
	copy(s[pos:], s[pos+1:v.size])
	var zero T
	s[v.size-1] = zero
	v.resizeDown(v.size - 1)
	v.size--
	v.epoch++
	return v.cursor(pos, false), nil
}

// EraseRange removes the elements in [first, last). It returns a cursor to the
// first element after the erased range, now located at first.
func (v *Vector[T, A, PA]) EraseRange(first, last int) (Cursor[T, A, PA], error) {
	if first < 0 || first > last || last > v.Size() {
		return v.End(), fmt.Errorf("%w: erase range [%d,%d), size %d", ErrInvalidRange, first, last, v.Size())
	}
	count := last - first
	if count == 0 {
		return v.cursor(first, false), nil
	}
	s := v.slots()
	copy(s[first:], s[last:v.size])
	clear(s[v.size-count : v.size])
	newSize := v.size - count
	v.resizeDown(newSize)
	v.size = newSize
	v.epoch++
	return v.cursor(first, false), nil
}

// Clear removes all elements, releases a heap buffer and returns to inline
// storage with the static capacity.
func (v *Vector[T, A, PA]) Clear() {
	if v.heap != nil {
		tracer().Debugf("smallvec: clear releases heap buffer, capacity=%d", len(v.heap))
		v.heap = nil
	} else {
		clear(PA(&v.inline).Slots()[:v.size])
	}
	v.size = 0
	v.epoch++
}

// sharesStorage reports whether items overlaps buf's backing array. Slices
// with a reduced capacity (items[i:j:j]) are detected as well, as the check
// looks for the first and last element of items anywhere in buf.
func sharesStorage[T any](buf, items []T) bool {
	if cap(buf) == 0 || len(items) == 0 {
		return false
	}
	first, last := &items[0], &items[len(items)-1]
	for i := range buf[:cap(buf)] {
		if p := &buf[i]; p == first || p == last {
			return true
		}
	}
	return false
}

// --- Comparison ------------------------------------------------------------

// Equal reports whether a and b hold the same number of elements and the
// elements are pairwise equal, in order. Capacity and storage mode do not
// take part in the comparison, nor do the static capacities of a and b.
func Equal[T comparable, A, B any, PA Storage[T, A], PB Storage[T, B]](a *Vector[T, A, PA], b *Vector[T, B, PB]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any, A, B any, PA Storage[T, A], PB Storage[T, B]](a *Vector[T, A, PA], b *Vector[T, B, PB], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// String formats the elements like a Go slice.
func (v *Vector[T, A, PA]) String() string {
	return fmt.Sprint(v.Data())
}
