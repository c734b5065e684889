package smallvec

// CapacityFor returns the capacity a vector with the given static capacity
// needs to hold `needed` elements.
//
// Up to the static capacity, storage stays inline and the capacity is the
// static one. Above it, capacity is floor(1.5 * needed). The result is
// recomputed from the required count on every growth step and does not depend
// on the capacity a vector had before.
func CapacityFor(static, needed int) int {
	if needed <= static {
		return static
	}
	return needed + needed/2
}

// resizeUp makes room for n more elements. It is called before elements are
// added.
func (v *Vector[T, A, PA]) resizeUp(n int) {
	assert(n >= 0, "resizeUp called with negative count")
	needed := v.size + n
	if needed <= v.StaticCapacity() {
		return
	}
	if v.heap == nil {
		v.moveToHeap(needed)
		return
	}
	if needed > len(v.heap) {
		v.reallocate(needed)
	}
}

// resizeDown is called after a removal with the size the vector is about to
// have. It snaps back to inline storage as soon as newSize fits; above the
// static capacity the heap buffer is kept as it is.
func (v *Vector[T, A, PA]) resizeDown(newSize int) {
	if newSize > v.StaticCapacity() {
		return
	}
	if v.heap != nil {
		v.moveToInline(newSize)
	}
}

// moveToHeap copies the inline elements into a fresh heap buffer, sized to hold
// `needed` elements. The inline array is cleared and no longer read.
func (v *Vector[T, A, PA]) moveToHeap(needed int) {
	inline := PA(&v.inline).Slots()
	capacity := CapacityFor(len(inline), needed)
	heap := make([]T, capacity)
	copy(heap, inline[:v.size])
	clear(inline[:v.size])
	v.heap = heap
	v.epoch++
	tracer().Debugf("smallvec: inline -> heap, size=%d, capacity=%d", v.size, capacity)
}

// reallocate replaces an exhausted heap buffer.
func (v *Vector[T, A, PA]) reallocate(needed int) {
	capacity := CapacityFor(v.StaticCapacity(), needed)
	heap := make([]T, capacity)
	copy(heap, v.heap[:v.size])
	tracer().Debugf("smallvec: heap realloc, size=%d, capacity %d -> %d", v.size, len(v.heap), capacity)
	v.heap = heap
	v.epoch++
}

// moveToInline copies the first newSize elements back into the inline array and
// drops the heap buffer.
func (v *Vector[T, A, PA]) moveToInline(newSize int) {
	inline := PA(&v.inline).Slots()
	assert(newSize <= len(inline), "moveToInline called with size above static capacity")
	copy(inline, v.heap[:newSize])
	tracer().Debugf("smallvec: heap -> inline, size=%d, released capacity=%d", newSize, len(v.heap))
	v.heap = nil
	v.epoch++
}
