package smallvec

import "iter"

// Walk yields index and element for every position from `from` up to, but not
// including, `to`. Both cursors must belong to the same vector and move in the
// same direction; otherwise nothing is yielded.
//
// The sequence is lazy and may be ranged over repeatedly. Iteration stops early
// once the cursors become stale, i.e. if the vector relocates elements during
// iteration.
func (v *Vector[T, A, PA]) Walk(from, to Cursor[T, A, PA]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if from.vec != v || to.vec != v || from.reverse != to.reverse {
			return
		}
		for c := from; c.Valid() && c.pos != to.pos; c = c.Next() {
			if !to.Valid() {
				return
			}
			x, err := c.Value()
			if err != nil {
				return
			}
			if !yield(c.pos, x) {
				return
			}
		}
	}
}

// All yields index and element in forward order. Cursors are taken when
// iteration starts, so the sequence always reflects the current contents.
func (v *Vector[T, A, PA]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Walk(v.Begin(), v.End())(yield)
	}
}

// Values yields the elements in forward order.
func (v *Vector[T, A, PA]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields index and element in reverse order.
func (v *Vector[T, A, PA]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Walk(v.RBegin(), v.REnd())(yield)
	}
}
