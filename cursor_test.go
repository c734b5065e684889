package smallvec

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestForwardAndReverseCursors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smallvec")
	defer teardown()
	//
	v := FromSlice[int, Inline4[int]]([]int{1, 2, 3})
	var fwd []int
	for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
		x, err := c.Value()
		if err != nil {
			t.Fatalf("unexpected cursor error: %v", err)
		}
		fwd = append(fwd, x)
	}
	if !slices.Equal(fwd, []int{1, 2, 3}) {
		t.Errorf("unexpected forward traversal: %v", fwd)
	}
	var rev []int
	for c := v.RBegin(); !c.Equal(v.REnd()); c = c.Next() {
		x, _ := c.Value()
		rev = append(rev, x)
	}
	if !slices.Equal(rev, []int{3, 2, 1}) {
		t.Errorf("unexpected reverse traversal: %v", rev)
	}
	if _, err := v.End().Value(); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds dereferencing End, got %v", err)
	}
	if _, err := v.REnd().Value(); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds dereferencing REnd, got %v", err)
	}
	if !v.End().Prev().Equal(v.Begin().Next().Next()) {
		t.Errorf("expected End().Prev() to be at the last element")
	}
}

func TestCursorOnEmptyVector(t *testing.T) {
	var v Vec4[int]
	if !v.Begin().Equal(v.End()) || !v.RBegin().Equal(v.REnd()) {
		t.Errorf("expected begin == end on empty vector")
	}
	n := 0
	for range v.All() {
		n++
	}
	for range v.Backward() {
		n++
	}
	if n != 0 {
		t.Errorf("expected no elements from empty vector, got %d", n)
	}
}

func TestCursorInvalidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smallvec")
	defer teardown()
	//
	var v Vec4[int]
	v.Append(1, 2, 3)
	c := v.Begin()
	v.PushBack(4) // fits inline, no relocation
	if !c.Valid() {
		t.Fatalf("cursor should survive a push within capacity")
	}
	v.PushBack(5) // moves to heap
	if c.Valid() {
		t.Errorf("cursor should be stale after moving to heap")
	}
	if _, err := c.Value(); !errors.Is(err, ErrStaleCursor) {
		t.Errorf("expected ErrStaleCursor, got %v", err)
	}
	if err := c.Set(9); !errors.Is(err, ErrStaleCursor) {
		t.Errorf("expected ErrStaleCursor from Set, got %v", err)
	}
	c = v.Begin()
	v.PopBack() // 4 elements: snaps back inline
	if c.Valid() {
		t.Errorf("cursor should be stale after moving inline")
	}
	c = v.Begin()
	if _, err := v.Insert(0, 0); err != nil {
		t.Fatalf("unexpected Insert error: %v", err)
	}
	if c.Valid() {
		t.Errorf("cursor should be stale after shifting insert")
	}
	c = v.Begin()
	v.Clear()
	if c.Valid() {
		t.Errorf("cursor should be stale after Clear")
	}
	var zero Cursor[int, Inline4[int], *Inline4[int]]
	if zero.Valid() {
		t.Errorf("zero cursor must not be valid")
	}
	if _, err := zero.Value(); !errors.Is(err, ErrStaleCursor) {
		t.Errorf("expected ErrStaleCursor from zero cursor, got %v", err)
	}
}

func TestCursorSet(t *testing.T) {
	v := FromSlice[string, Inline4[string]]([]string{"a", "b"})
	c, err := v.CursorAt(1)
	if err != nil {
		t.Fatalf("unexpected CursorAt error: %v", err)
	}
	if err = c.Set("B"); err != nil {
		t.Fatalf("unexpected Set error: %v", err)
	}
	if v.Get(1) != "B" {
		t.Errorf("write through cursor not visible")
	}
	if _, err = v.CursorAt(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for CursorAt(3), got %v", err)
	}
	if _, err = v.RCursorAt(2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for RCursorAt(2), got %v", err)
	}
	r, _ := v.RCursorAt(0)
	if !r.IsReverse() || !r.Next().Equal(v.REnd()) {
		t.Errorf("expected reverse cursor at 0 to advance to REnd")
	}
}

func TestWalkIsLazyAndRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smallvec")
	defer teardown()
	//
	v := FromSlice[int, Inline8[int]]([]int{10, 20, 30, 40, 50})
	from, _ := v.CursorAt(1)
	to, _ := v.CursorAt(4)
	seq := v.Walk(from, to)
	for round := 0; round < 2; round++ {
		var got []int
		for i, x := range seq {
			if x != v.Get(i) {
				t.Fatalf("index %d does not match element %d", i, x)
			}
			got = append(got, x)
		}
		if !slices.Equal(got, []int{20, 30, 40}) {
			t.Errorf("round %d: unexpected walk: %v", round, got)
		}
	}
	for range seq {
		break
	}
	v.Erase(0)
	n := 0
	for range seq {
		n++
	}
	if n != 0 {
		t.Errorf("walk over stale cursors must yield nothing, got %d elements", n)
	}
	if got := slices.Collect(v.Values()); !slices.Equal(got, []int{20, 30, 40, 50}) {
		t.Errorf("unexpected Values: %v", got)
	}
	var back []int
	for _, x := range v.Backward() {
		back = append(back, x)
	}
	if !slices.Equal(back, []int{50, 40, 30, 20}) {
		t.Errorf("unexpected Backward: %v", back)
	}
	mixed := v.Walk(v.Begin(), v.REnd())
	for range mixed {
		t.Errorf("walk with cursors of different direction must yield nothing")
	}
}

func TestWalkStopsWhenVectorRelocates(t *testing.T) {
	var v Vec4[int]
	v.Append(1, 2, 3, 4)
	n := 0
	for _, x := range v.All() {
		n++
		if x == 2 {
			v.PushBack(5) // relocates to heap
		}
	}
	if n != 2 {
		t.Errorf("expected iteration to stop after relocation, visited %d", n)
	}
}

func TestCursorsOnNilVector(t *testing.T) {
	var v *Vec4[int]
	for _, c := range []Cursor[int, Inline4[int], *Inline4[int]]{v.Begin(), v.End(), v.RBegin(), v.REnd()} {
		if c.Valid() {
			t.Errorf("expected cursor at %d of nil vector to be invalid", c.Index())
		}
		if _, err := c.Value(); !errors.Is(err, ErrStaleCursor) {
			t.Errorf("expected ErrStaleCursor from nil vector cursor, got %v", err)
		}
	}
	if !v.Begin().Equal(v.End()) {
		t.Errorf("expected begin == end for nil vector")
	}
	if c, err := v.CursorAt(0); err != nil || c.Valid() {
		t.Errorf("expected detached cursor at 0 of nil vector, got valid=%v err=%v", c.Valid(), err)
	}
	for i := range v.All() {
		t.Errorf("nil vector must not yield elements, got index %d", i)
	}
	for i := range v.Backward() {
		t.Errorf("nil vector must not yield elements in reverse, got index %d", i)
	}
}
